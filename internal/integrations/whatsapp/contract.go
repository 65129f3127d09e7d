package whatsapp

// Logger интерфейс логгера, передается из pkg/logger
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
