package create_booking

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
)

var (
	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDateNotAvailable возвращается, когда дата не проходит правила календаря
	ErrDateNotAvailable = errors.New("create_booking: date not available")

	// ErrStoreNotConfigured возвращается, когда хранилище не настроено
	// (нет подключения, нет прав, нет таблицы)
	ErrStoreNotConfigured = errors.New("create_booking: booking store not configured")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	ErrStoreUnavailable = errors.New("create_booking: booking store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError ошибки формы по полям (ключ - имя поля в JSON)
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(keys, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// DateNotAvailableError дата отклонена календарем
type DateNotAvailableError struct {
	Date      calendar.Date
	Threshold calendar.Date
	Reason    calendar.Reason
}

func (e *DateNotAvailableError) Error() string {
	return fmt.Sprintf("%s: %s (%s, threshold %s)", ErrDateNotAvailable, e.Date, e.Reason, e.Threshold)
}

func (e *DateNotAvailableError) Unwrap() error {
	return ErrDateNotAvailable
}
