package diagnostic

import (
	"errors"
	"fmt"

	"github.com/m04kA/nuisibook-booking/internal/infra/storage/pgerrors"
)

var (
	// ErrNotConfigured возвращается, когда подключение к БД не настроено
	ErrNotConfigured = errors.New("diagnostic.repository: store not configured")

	// ErrDiagnosticNotFound возвращается, когда диагностика по slug не найдена
	ErrDiagnosticNotFound = errors.New("diagnostic.repository: diagnostic not found")

	// ErrPermissionDenied возвращается, когда у роли БД нет прав на таблицу
	ErrPermissionDenied = errors.New("diagnostic.repository: permission denied")

	// ErrTableMissing возвращается, когда таблица диагностик не существует
	ErrTableMissing = errors.New("diagnostic.repository: table does not exist")

	// ErrUnavailable возвращается при сетевых ошибках и недоступности БД
	ErrUnavailable = errors.New("diagnostic.repository: store unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("diagnostic.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("diagnostic.repository: failed to execute query")
)

func classify(op string, err error) error {
	switch pgerrors.Classify(err) {
	case pgerrors.KindNoRows:
		return ErrDiagnosticNotFound
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
