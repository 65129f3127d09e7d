package update_reservation

import (
	"context"
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
