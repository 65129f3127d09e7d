package set_confirmed

import (
	"context"

	"github.com/pointbreak-gaming/PB-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	SetConfirmed(ctx context.Context, id int64, confirmed bool) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
