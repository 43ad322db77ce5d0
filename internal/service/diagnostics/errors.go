package diagnostics

import "errors"

var (
	// ErrMissingSlug возвращается, когда slug не передан
	ErrMissingSlug = errors.New("diagnostics: missing slug")

	// ErrDiagnosticNotFound возвращается, когда диагностика не найдена
	ErrDiagnosticNotFound = errors.New("diagnostics: diagnostic not found")

	// ErrNotReady возвращается, когда диагностика не появилась до истечения ожидания
	ErrNotReady = errors.New("diagnostics: diagnostic not ready")

	// ErrNotConfigured возвращается, когда хранилище не настроено
	ErrNotConfigured = errors.New("diagnostics: store not configured")

	// ErrTableMissing возвращается, когда таблица диагностик отсутствует
	ErrTableMissing = errors.New("diagnostics: table does not exist")

	// ErrInternal возвращается при остальных ошибках хранилища
	ErrInternal = errors.New("diagnostics: internal error")
)
