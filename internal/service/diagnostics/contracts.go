package diagnostics

import (
	"context"

	"github.com/m04kA/nuisibook-booking/internal/domain"
)

// DiagnosticRepository интерфейс хранилища диагностик
type DiagnosticRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Diagnostic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

// Metrics метрики поиска диагностик
type Metrics interface {
	IncDiagnosticLookup(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
