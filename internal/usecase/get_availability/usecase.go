package get_availability

import (
	"context"
	"fmt"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/internal/schedule"
)

// UseCase use case запроса доступности слотов на дату
type UseCase struct {
	reservationRepo ReservationRepository
	calendar        *schedule.Calendar
	tvCapacity      int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	calendar *schedule.Calendar,
	tvCapacity int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		calendar:        calendar,
		tvCapacity:      tvCapacity,
		logger:          logger,
	}
}

// Execute вычисляет доступность каждого валидного времени старта на дату.
// Занятость пересчитывается из действующих бронирований при каждом запросе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	if !uc.calendar.IsDateAllowed(req.Date) {
		uc.logger.Warn("GetAvailability: date %s outside booking window", req.Date.Format(domain.DateFormat))
		return nil, ErrDateNotAllowed
	}

	reservations, err := uc.reservationRepo.GetConfirmedByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load reservations for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load reservations: %v", ErrInternal, err)
	}

	grid := uc.calendar.Units(req.Date)
	idx := schedule.BuildIndex(grid, reservations)
	availability := schedule.ComputeAvailability(uc.calendar, idx, req.Date, req.DurationMinutes, uc.tvCapacity)

	slots := make([]Slot, 0, len(availability))
	for _, a := range availability {
		slots = append(slots, Slot{
			StartTime:         a.StartTime,
			AvailableStations: a.AvailableStations,
			OccupiedStations:  a.OccupiedStations,
			TVRemaining:       a.TVRemaining,
			IsPast:            a.IsPast,
		})
	}

	uc.logger.Info("GetAvailability: date=%s duration=%d, %d starts computed from %d reservations",
		req.Date.Format(domain.DateFormat), req.DurationMinutes, len(slots), len(reservations))

	return &Response{
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		TVCapacity:      uc.tvCapacity,
		Slots:           slots,
	}, nil
}

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: duration %d is not offered", ErrInvalidInput, req.DurationMinutes)
	}
	return nil
}
