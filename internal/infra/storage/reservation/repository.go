package reservation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"reservation_date",
	"start_time",
	"selections",
	"customer_name",
	"customer_phone",
	"confirmed",
	"origin",
	"payments",
	"total_price",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями станций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Selections и Payments хранятся как JSONB: состав брони читается и пишется
// только целиком, отдельные строки по станциям не нужны.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	selectionsJSON, err := json.Marshal(res.Selections)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal selections: %v", ErrMarshalJSON, err)
	}
	paymentsJSON, err := marshalPayments(res.Payments)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal payments: %v", ErrMarshalJSON, err)
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"reservation_date",
			"start_time",
			"selections",
			"customer_name",
			"customer_phone",
			"confirmed",
			"origin",
			"payments",
			"total_price",
		).
		Values(
			res.Date,
			res.StartTime,
			selectionsJSON,
			res.CustomerName,
			res.CustomerPhone,
			res.Confirmed,
			res.Origin,
			paymentsJSON,
			res.TotalPrice,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}
	return res, nil
}

// GetByDate получает все бронирования на дату, по времени начала.
// Отмененные (confirmed=false) включаются: занятость фильтрует их на уровне
// расписания, а админка показывает их в списке дня.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"reservation_date": dateOnly(date)}).
		OrderBy("start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetConfirmedByDate получает действующие бронирования на дату.
// Это источник данных для индекса занятости.
func (r *Repository) GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"reservation_date": dateOnly(date),
			"confirmed":        true,
		}).
		OrderBy("start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Search выполняет архивный поиск бронирований с пагинацией.
// Возвращает страницу записей и общее количество подходящих под фильтр.
func (r *Repository) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.Reservation, int64, error) {
	where := searchConditions(filter)

	countBuilder := psqlbuilder.Select("COUNT(*)").From("reservations")
	for _, cond := range where {
		countBuilder = countBuilder.Where(cond)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: Search - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: Search - execute count: %v", ErrExecQuery, err)
	}

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("reservation_date DESC, start_time DESC, id DESC")
	for _, cond := range where {
		selectBuilder = selectBuilder.Where(cond)
	}

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
		if filter.Page > 1 {
			selectBuilder = selectBuilder.Offset(uint64((filter.Page - 1) * filter.Limit))
		}
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// SetConfirmed выставляет флаг действительности брони (confirmed=false - мягкая отмена)
func (r *Repository) SetConfirmed(ctx context.Context, id int64, confirmed bool) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("confirmed", confirmed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetConfirmed - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetConfirmed - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetConfirmed - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// Update полностью перезаписывает изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	selectionsJSON, err := json.Marshal(res.Selections)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal selections: %v", ErrMarshalJSON, err)
	}
	paymentsJSON, err := marshalPayments(res.Payments)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal payments: %v", ErrMarshalJSON, err)
	}

	query, args, err := psqlbuilder.Update("reservations").
		Set("reservation_date", res.Date).
		Set("start_time", res.StartTime).
		Set("selections", selectionsJSON).
		Set("customer_name", res.CustomerName).
		Set("customer_phone", res.CustomerPhone).
		Set("confirmed", res.Confirmed).
		Set("payments", paymentsJSON).
		Set("total_price", res.TotalPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func searchConditions(filter domain.SearchFilter) []squirrel.Sqlizer {
	var where []squirrel.Sqlizer

	if filter.Date != nil {
		where = append(where, squirrel.Eq{"reservation_date": dateOnly(*filter.Date)})
	} else {
		if filter.StartDate != nil {
			where = append(where, squirrel.GtOrEq{"reservation_date": dateOnly(*filter.StartDate)})
		}
		if filter.EndDate != nil {
			where = append(where, squirrel.LtOrEq{"reservation_date": dateOnly(*filter.EndDate)})
		}
	}

	if filter.NameQuery != nil && *filter.NameQuery != "" {
		where = append(where, squirrel.ILike{"customer_name": "%" + *filter.NameQuery + "%"})
	}

	return where
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res            domain.Reservation
		selectionsJSON []byte
		paymentsJSON   []byte
		createdAt      sql.NullTime
		updatedAt      sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.Date,
		&res.StartTime,
		&selectionsJSON,
		&res.CustomerName,
		&res.CustomerPhone,
		&res.Confirmed,
		&res.Origin,
		&paymentsJSON,
		&res.TotalPrice,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(selectionsJSON, &res.Selections); err != nil {
		return nil, fmt.Errorf("unmarshal selections: %w", err)
	}
	if len(paymentsJSON) > 0 {
		if err := json.Unmarshal(paymentsJSON, &res.Payments); err != nil {
			return nil, fmt.Errorf("unmarshal payments: %w", err)
		}
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan reservation row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}
	return reservations, nil
}

// marshalPayments сериализует платежи, nil превращая в пустой массив
func marshalPayments(payments []domain.Payment) ([]byte, error) {
	if payments == nil {
		payments = []domain.Payment{}
	}
	return json.Marshal(payments)
}

// dateOnly обрезает время: в колонке reservation_date хранится только день
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
