package get_diagnostic

import (
	"context"

	"github.com/m04kA/nuisibook-booking/internal/domain"
)

type DiagnosticService interface {
	Get(ctx context.Context, slug string) (*domain.Diagnostic, error)
	Wait(ctx context.Context, slug string) (*domain.Diagnostic, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
