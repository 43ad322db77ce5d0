package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, когда API ключ SendGrid не задан
	ErrNotConfigured = errors.New("mailer: sendgrid not configured")

	// ErrInvalidMessage возвращается, когда у письма нет получателя или темы
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrSendFailed возвращается при сетевой ошибке отправки
	ErrSendFailed = errors.New("mailer: send failed")

	// ErrRejected возвращается, когда SendGrid ответил статусом >= 400
	ErrRejected = errors.New("mailer: rejected by sendgrid")
)
