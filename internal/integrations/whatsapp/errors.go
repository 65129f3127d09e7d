package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrSendFailed возвращается, когда Cloud API отклонил отправку сообщения
	ErrSendFailed = errors.New("whatsapp client: failed to send message")

	// ErrInvalidPayload возвращается при некорректном payload вебхука
	ErrInvalidPayload = errors.New("whatsapp client: invalid webhook payload")
)
