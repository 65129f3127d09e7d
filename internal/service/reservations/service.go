package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	reservationRepo "github.com/pointbreak-gaming/PB-BookingService/internal/infra/storage/reservation"
	"github.com/pointbreak-gaming/PB-BookingService/internal/service/reservations/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Service сервис для чтения и управления бронированиями (админка)
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetDaySheet получает все бронирования даты со сводкой дня.
// Отмененные включены в список, но исключены из сводки.
func (s *Service) GetDaySheet(ctx context.Context, date time.Time) (*models.ReservationListResponse, error) {
	s.logger.Info("GetDaySheet: fetching reservations for %s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDaySheet: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDaySheet - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDaySheet: %d reservations on %s", len(reservations), date.Format(domain.DateFormat))
	return models.FromDomainReservationList(reservations, int64(len(reservations)), 1, len(reservations)), nil
}

// Search выполняет архивный поиск бронирований с пагинацией
func (s *Service) Search(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = defaultPageLimit
	}
	if req.Limit > maxPageLimit {
		req.Limit = maxPageLimit
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	s.logger.Info("Search: page=%d limit=%d", req.Page, req.Limit)

	reservations, total, err := s.reservationRepo.Search(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: %d of %d reservations returned", len(reservations), total)
	return models.FromDomainReservationList(reservations, total, req.Page, req.Limit), nil
}

// SetConfirmed переключает флаг действительности брони.
// confirmed=false это мягкая отмена: запись остается в истории, но сразу
// освобождает свои слоты. Повторное подтверждение здесь не перепроверяет
// конфликты - за восстановление отвечает админ.
func (s *Service) SetConfirmed(ctx context.Context, id int64, confirmed bool) (*models.ReservationResponse, error) {
	s.logger.Info("SetConfirmed: reservation id=%d -> confirmed=%t", id, confirmed)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.reservationRepo.SetConfirmed(ctx, id, confirmed); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("SetConfirmed: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("SetConfirmed: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetConfirmed - repository error: %v", ErrInternal, err)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("SetConfirmed: failed to reload reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetConfirmed - reload error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}
