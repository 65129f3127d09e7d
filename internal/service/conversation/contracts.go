package conversation

import (
	"context"

	"github.com/pointbreak-gaming/PB-BookingService/internal/domain"
	"github.com/pointbreak-gaming/PB-BookingService/internal/integrations/whatsapp"
	createReservationUC "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/get_availability"
)

// SessionStore интерфейс хранилища диалоговых сессий
type SessionStore interface {
	Get(ctx context.Context, phone string) (*domain.Session, error)
	Set(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, phone string) error
}

// Messenger интерфейс отправки сообщений WhatsApp
type Messenger interface {
	SendText(ctx context.Context, to, text string) error
	SendList(ctx context.Context, to, header, body, buttonText string, sections []whatsapp.Section) error
	SendButtons(ctx context.Context, to, body string, buttons []whatsapp.ButtonReply) error
}

// AvailabilityProvider интерфейс usecase доступности слотов
type AvailabilityProvider interface {
	Execute(ctx context.Context, req *getAvailabilityUC.Request) (*getAvailabilityUC.Response, error)
}

// ReservationCreator интерфейс usecase создания бронирования
type ReservationCreator interface {
	Execute(ctx context.Context, req *createReservationUC.Request) (*createReservationUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
