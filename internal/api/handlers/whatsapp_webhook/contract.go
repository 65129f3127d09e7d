package whatsapp_webhook

import (
	"context"

	"github.com/pointbreak-gaming/PB-BookingService/internal/integrations/whatsapp"
)

type ConversationService interface {
	HandleMessage(ctx context.Context, msg *whatsapp.IncomingMessage) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
