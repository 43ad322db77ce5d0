package notifications

import (
	"context"

	"github.com/m04kA/nuisibook-booking/internal/integrations/mailer"
	"github.com/m04kA/nuisibook-booking/internal/integrations/sms"
)

// EmailSender отправка писем клиенту
type EmailSender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// SMSSender отправка SMS специалисту
type SMSSender interface {
	Send(ctx context.Context, msg sms.Message) error
}

// Metrics метрики уведомлений
type Metrics interface {
	IncNotification(channel, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
