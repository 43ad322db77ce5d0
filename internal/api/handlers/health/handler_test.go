package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	healthService "github.com/m04kA/nuisibook-booking/internal/service/health"
)

type stubService healthService.Report

func (s stubService) Check(context.Context) healthService.Report { return healthService.Report(s) }

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		report     healthService.Report
		wantStatus int
	}{
		{
			name: "healthy",
			report: healthService.Report{OK: true, Probes: []healthService.Probe{
				{Name: "bookings", OK: true, Message: "connected"},
				{Name: "diagnostics", OK: true, Message: "connected"},
			}},
			wantStatus: http.StatusOK,
		},
		{
			name: "diagnostics down",
			report: healthService.Report{OK: false, Probes: []healthService.Probe{
				{Name: "bookings", OK: true, Message: "connected"},
				{Name: "diagnostics", OK: false, Message: "table does not exist"},
			}},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(stubService(tt.report)).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body healthService.Report
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.report, body)
		})
	}
}
