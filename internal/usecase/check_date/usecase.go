package check_date

import (
	"context"
	"time"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
)

// UseCase проверяет, можно ли записаться на дату
type UseCase struct {
	calendar     *calendar.Calendar
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(cal *calendar.Calendar, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		calendar:     cal,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку даты относительно текущего порога доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.location)
	threshold := uc.calendar.NextAvailability(now)
	reason := uc.calendar.Ineligibility(req.Date, threshold)

	uc.logger.Info("CheckDate: date=%s threshold=%s reason=%q", req.Date, threshold, reason)

	return &Response{
		Date:             req.Date,
		DateDisplay:      calendar.FormatLong(req.Date),
		Available:        reason == calendar.ReasonNone,
		Reason:           reason,
		Threshold:        threshold,
		ThresholdDisplay: calendar.FormatLong(threshold),
	}, nil
}
