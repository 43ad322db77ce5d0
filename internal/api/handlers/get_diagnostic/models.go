package get_diagnostic

import (
	"time"

	"github.com/m04kA/nuisibook-booking/internal/domain"
)

// DiagnosticResponse HTTP response model
type DiagnosticResponse struct {
	Slug      string `json:"slug"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}

// FromDomainDiagnostic конвертирует доменную модель в HTTP response
func FromDomainDiagnostic(d *domain.Diagnostic) *DiagnosticResponse {
	resp := &DiagnosticResponse{Slug: d.Slug, Content: d.Content}
	if !d.CreatedAt.IsZero() {
		resp.CreatedAt = d.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
