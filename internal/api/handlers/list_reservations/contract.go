package list_reservations

import (
	"context"
	"time"

	"github.com/pointbreak-gaming/PB-BookingService/internal/service/reservations/models"
)

type ReservationService interface {
	GetDaySheet(ctx context.Context, date time.Time) (*models.ReservationListResponse, error)
	Search(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
