package sms

import "errors"

var (
	// ErrNotConfigured возвращается, когда учетные данные Twilio не заданы
	ErrNotConfigured = errors.New("sms: twilio not configured")

	// ErrInvalidMessage возвращается для пустого номера или текста
	ErrInvalidMessage = errors.New("sms: invalid message")

	// ErrSendFailed возвращается при ошибке Twilio API
	ErrSendFailed = errors.New("sms: send failed")
)
