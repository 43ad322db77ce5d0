package health

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingRepo "github.com/m04kA/nuisibook-booking/internal/infra/storage/booking"
	diagnosticRepo "github.com/m04kA/nuisibook-booking/internal/infra/storage/diagnostic"
)

const (
	ProbeBookings    = "bookings"
	ProbeDiagnostics = "diagnostics"
)

// Probe результат проверки одной зависимости
type Probe struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Report итог проверки
type Report struct {
	OK     bool    `json:"ok"`
	Probes []Probe `json:"probes"`
}

// Service проверяет хранилища бронирований и диагностик
type Service struct {
	bookings    Pinger
	diagnostics Pinger
	timeout     time.Duration
	logger      Logger
}

// NewService создает сервис проверки состояния
func NewService(bookings, diagnostics Pinger, timeout time.Duration, logger Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{bookings: bookings, diagnostics: diagnostics, timeout: timeout, logger: logger}
}

// Check опрашивает обе зависимости параллельно
func (s *Service) Check(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	probes := []Probe{{Name: ProbeBookings}, {Name: ProbeDiagnostics}}
	pingers := []Pinger{s.bookings, s.diagnostics}

	var wg sync.WaitGroup
	for i := range probes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := pingers[i].Ping(ctx)
			probes[i].OK = err == nil
			probes[i].Message = describe(err)
		}(i)
	}
	wg.Wait()

	report := Report{OK: true, Probes: probes}
	for _, p := range probes {
		if !p.OK {
			report.OK = false
			s.logger.Warn("Health: probe %s failed: %s", p.Name, p.Message)
		}
	}
	return report
}

func describe(err error) string {
	switch {
	case err == nil:
		return "connected"
	case errors.Is(err, bookingRepo.ErrNotConfigured), errors.Is(err, diagnosticRepo.ErrNotConfigured):
		return "store not configured"
	case errors.Is(err, bookingRepo.ErrTableMissing), errors.Is(err, diagnosticRepo.ErrTableMissing):
		return "table does not exist"
	case errors.Is(err, bookingRepo.ErrPermissionDenied), errors.Is(err, diagnosticRepo.ErrPermissionDenied):
		return "permission denied"
	case errors.Is(err, bookingRepo.ErrUnavailable), errors.Is(err, diagnosticRepo.ErrUnavailable):
		return "store unavailable"
	default:
		return err.Error()
	}
}
