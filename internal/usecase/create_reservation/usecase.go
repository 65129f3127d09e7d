package create_reservation

import (
	"context"
	"fmt"
	"strings"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/internal/schedule"
)

// UseCase use case создания бронирования
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

// Execute выполняет use case создания бронирования.
//
// Проверка конфликтов выполняется по схеме read-validate-write: индекс
// занятости строится из действующих броней даты, запрос прогоняется через
// правила расписания и только после этого пишется в БД. Загрузка зала
// исчисляется единицами запросов в минуту, так что окно гонки между чтением
// и записью принимаем как допустимое.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: origin=%s, date=%s, start=%s, stations=%d",
		req.Origin, req.Date.Format(domain.DateFormat), req.StartTime, len(req.Selections))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	selections := make([]domain.Selection, len(req.Selections))
	for i, sel := range req.Selections {
		selections[i] = domain.Selection{
			StationID:       sel.StationID,
			Players:         sel.Players,
			DurationMinutes: sel.DurationMinutes,
		}
	}

	// 2. Загружаем действующие брони даты и строим индекс занятости
	existing, err := uc.reservationRepo.GetConfirmedByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to load reservations for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	grid := uc.calendar.Units(req.Date)
	idx := schedule.BuildIndex(grid, existing)

	// 3. Прогоняем запрос через правила расписания
	adminOverride := req.AdminOverride && req.Origin == domain.OriginAdmin
	if violation := uc.validator.Validate(req.Date, req.StartTime, selections, idx, adminOverride); violation != nil {
		uc.logger.Warn("CreateReservation: rejected: %v", violation)
		return nil, violationError(violation)
	}

	// 4. Сохраняем бронирование
	reservation := &domain.Reservation{
		Date:          req.Date,
		StartTime:     req.StartTime,
		Selections:    selections,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Confirmed:     true,
		Origin:        req.Origin,
		TotalPrice:    req.TotalPrice,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", created.ID)

	return &Response{
		ID:            created.ID,
		Date:          created.Date,
		StartTime:     created.StartTime,
		Selections:    created.Selections,
		CustomerName:  created.CustomerName,
		CustomerPhone: created.CustomerPhone,
		Confirmed:     created.Confirmed,
		Origin:        created.Origin,
		TotalPrice:    created.TotalPrice,
		CreatedAt:     created.CreatedAt,
		UpdatedAt:     created.UpdatedAt,
	}, nil
}
