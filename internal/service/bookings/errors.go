package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается, когда бронирование уже в финальном статусе
	// или переход не меняет статус
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConflict возвращается, когда статус изменился параллельно
	ErrConflict = errors.New("booking was modified concurrently")

	// ErrStoreNotConfigured возвращается, когда хранилище не настроено
	ErrStoreNotConfigured = errors.New("booking store not configured")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	ErrStoreUnavailable = errors.New("booking store unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
