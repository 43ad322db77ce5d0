package health

import (
	"context"

	healthService "github.com/m04kA/nuisibook-booking/internal/service/health"
)

type HealthService interface {
	Check(ctx context.Context) healthService.Report
}
