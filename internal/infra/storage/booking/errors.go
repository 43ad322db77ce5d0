package booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/nuisibook-booking/internal/infra/storage/pgerrors"
)

var (
	// ErrNotConfigured возвращается, когда подключение к БД не настроено
	ErrNotConfigured = errors.New("booking.repository: store not configured")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrStatusConflict возвращается, когда статус изменился между чтением и обновлением
	ErrStatusConflict = errors.New("booking.repository: status changed concurrently")

	// ErrPermissionDenied возвращается, когда у роли БД нет прав на таблицу
	ErrPermissionDenied = errors.New("booking.repository: permission denied")

	// ErrTableMissing возвращается, когда таблица бронирований не существует
	ErrTableMissing = errors.New("booking.repository: table does not exist")

	// ErrUnavailable возвращается при сетевых ошибках и недоступности БД
	ErrUnavailable = errors.New("booking.repository: store unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")
)

// classify оборачивает ошибку драйвера в сентинел по её классу
func classify(op string, err error) error {
	switch pgerrors.Classify(err) {
	case pgerrors.KindNoRows:
		return ErrBookingNotFound
	case pgerrors.KindPermissionDenied:
		return fmt.Errorf("%w: %s: %v", ErrPermissionDenied, op, err)
	case pgerrors.KindTableMissing:
		return fmt.Errorf("%w: %s: %v", ErrTableMissing, op, err)
	case pgerrors.KindUnavailable:
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	default:
		return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
	}
}
