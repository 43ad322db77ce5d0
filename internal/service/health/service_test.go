package health

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "github.com/m04kA/nuisibook-booking/internal/infra/storage/booking"
	diagnosticRepo "github.com/m04kA/nuisibook-booking/internal/infra/storage/diagnostic"
	"github.com/m04kA/nuisibook-booking/pkg/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func ok() Pinger { return pingerFunc(func(context.Context) error { return nil }) }

func failing(err error) Pinger {
	return pingerFunc(func(context.Context) error { return err })
}

func TestService_Check(t *testing.T) {
	tests := []struct {
		name        string
		bookings    Pinger
		diagnostics Pinger
		wantOK      bool
		wantMsgs    []string
	}{
		{"all good", ok(), ok(), true, []string{"connected", "connected"}},
		{
			name:        "bookings not configured",
			bookings:    failing(bookingRepo.ErrNotConfigured),
			diagnostics: ok(),
			wantMsgs:    []string{"store not configured", "connected"},
		},
		{
			name:        "diagnostics table missing",
			bookings:    ok(),
			diagnostics: failing(fmt.Errorf("%w: ping", diagnosticRepo.ErrTableMissing)),
			wantMsgs:    []string{"connected", "table does not exist"},
		},
		{
			name:        "unknown error",
			bookings:    failing(errors.New("boom")),
			diagnostics: failing(bookingRepo.ErrUnavailable),
			wantMsgs:    []string{"boom", "store unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.bookings, tt.diagnostics, time.Second, logger.Discard())

			report := svc.Check(context.Background())
			assert.Equal(t, tt.wantOK, report.OK)
			require.Len(t, report.Probes, 2)
			assert.Equal(t, ProbeBookings, report.Probes[0].Name)
			assert.Equal(t, ProbeDiagnostics, report.Probes[1].Name)
			assert.Equal(t, tt.wantMsgs, []string{report.Probes[0].Message, report.Probes[1].Message})
		})
	}
}

func TestService_Check_Timeout(t *testing.T) {
	slow := pingerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	svc := NewService(slow, ok(), 10*time.Millisecond, logger.Discard())

	report := svc.Check(context.Background())
	assert.False(t, report.OK)
	assert.False(t, report.Probes[0].OK)
	assert.True(t, report.Probes[1].OK)
}
