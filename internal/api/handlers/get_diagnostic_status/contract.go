package get_diagnostic_status

import "context"

type DiagnosticService interface {
	IsAvailable(ctx context.Context, slug string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
}
