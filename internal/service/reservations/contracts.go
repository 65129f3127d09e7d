package reservations

import (
	"context"
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.Reservation, int64, error)
	SetConfirmed(ctx context.Context, id int64, confirmed bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
