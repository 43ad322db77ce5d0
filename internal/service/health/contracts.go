package health

import "context"

// Pinger проверяемая зависимость
type Pinger interface {
	Ping(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
