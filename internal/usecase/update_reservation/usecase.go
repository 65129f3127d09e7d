package update_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	storage "github.com/pointbreak-gaming/PB-BookingService/internal/infra/storage/reservation"
	"github.com/pointbreak-gaming/PB-BookingService/internal/schedule"
)

// UseCase use case редактирования бронирования из админки
type UseCase struct {
	reservationRepo ReservationRepository
	calendar        *schedule.Calendar
	validator       *schedule.Validator
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	calendar *schedule.Calendar,
	validator *schedule.Validator,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		calendar:        calendar,
		validator:       validator,
		logger:          logger,
	}
}

// Execute применяет частичное обновление к бронированию.
//
// Если изменились дата, время или состав станций, новая комбинация проходит
// через те же правила расписания, что и создание. Индекс занятости строится
// без самой редактируемой брони, чтобы она не конфликтовала со своими же
// прежними слотами. Редактирование всегда идет с правами админки: прошедшие
// слоты разрешены, эксклюзивность и лимит ТВ - нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d", req.ID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 1. Загружаем текущую запись
	current, err := uc.reservationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 2. Применяем изменения к копии
	updated := *current
	scheduleChanged := false

	if req.Date != nil && !sameDate(*req.Date, current.Date) {
		updated.Date = *req.Date
		scheduleChanged = true
	}
	if req.StartTime != nil && *req.StartTime != current.StartTime {
		updated.StartTime = *req.StartTime
		scheduleChanged = true
	}
	if req.Selections != nil {
		updated.Selections = make([]domain.Selection, len(req.Selections))
		for i, sel := range req.Selections {
			updated.Selections[i] = domain.Selection{
				StationID:       sel.StationID,
				Players:         sel.Players,
				DurationMinutes: sel.DurationMinutes,
			}
		}
		scheduleChanged = true
	}
	if req.CustomerName != nil {
		updated.CustomerName = strings.TrimSpace(*req.CustomerName)
	}
	if req.CustomerPhone != nil {
		updated.CustomerPhone = strings.TrimSpace(*req.CustomerPhone)
	}
	if req.Payments != nil {
		updated.Payments = req.Payments
	}
	if req.TotalPrice != nil {
		updated.TotalPrice = *req.TotalPrice
	}

	// 3. Перепроверяем расписание, если слоты могли измениться.
	// Отмененная бронь не занимает слоты, её можно править свободно.
	if scheduleChanged && updated.Confirmed {
		existing, err := uc.reservationRepo.GetConfirmedByDate(ctx, updated.Date)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to load reservations for %s: %v",
				updated.Date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
		}

		grid := uc.calendar.Units(updated.Date)
		idx := schedule.BuildIndexExcluding(grid, existing, updated.ID)

		if violation := uc.validator.Validate(updated.Date, updated.StartTime, updated.Selections, idx, true); violation != nil {
			uc.logger.Warn("UpdateReservation: id=%d rejected: %v", req.ID, violation)
			return nil, violationError(violation)
		}
	}

	// 4. Сохраняем
	if err := uc.reservationRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", req.ID)

	return &Response{
		ID:            updated.ID,
		Date:          updated.Date,
		StartTime:     updated.StartTime,
		Selections:    updated.Selections,
		CustomerName:  updated.CustomerName,
		CustomerPhone: updated.CustomerPhone,
		Confirmed:     updated.Confirmed,
		Origin:        updated.Origin,
		Payments:      updated.Payments,
		TotalPrice:    updated.TotalPrice,
		PaidAmount:    updated.PaidAmount(),
		DueAmount:     updated.DueAmount(),
		CreatedAt:     updated.CreatedAt,
		UpdatedAt:     updated.UpdatedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.Selections != nil && len(req.Selections) == 0 {
		return fmt.Errorf("%w: selections must not be empty", ErrInvalidInput)
	}
	for _, sel := range req.Selections {
		if !domain.IsAllowedDuration(sel.DurationMinutes) {
			return fmt.Errorf("%w: duration %d is not offered", ErrInvalidInput, sel.DurationMinutes)
		}
		if sel.Players < domain.MinPlayers || sel.Players > domain.MaxPlayers {
			return fmt.Errorf("%w: players must be between %d and %d",
				ErrInvalidInput, domain.MinPlayers, domain.MaxPlayers)
		}
	}

	if req.CustomerName != nil {
		name := strings.TrimSpace(*req.CustomerName)
		if len(name) < domain.MinCustomerNameLength {
			return fmt.Errorf("%w: customer name must be at least %d characters",
				ErrInvalidInput, domain.MinCustomerNameLength)
		}
		if len(name) > domain.MaxCustomerNameLength {
			return fmt.Errorf("%w: customer name exceeds %d characters",
				ErrInvalidInput, domain.MaxCustomerNameLength)
		}
	}

	if req.TotalPrice != nil && *req.TotalPrice < 0 {
		return fmt.Errorf("%w: totalPrice must not be negative", ErrInvalidInput)
	}

	for _, p := range req.Payments {
		if p.Amount < 0 {
			return fmt.Errorf("%w: payment amount must not be negative", ErrInvalidInput)
		}
	}

	return nil
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
