package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
	"github.com/m04kA/nuisibook-booking/internal/domain"
)

// UseCase use case для получения порога доступности, срока обратного звонка
// и сетки недели для формы записи
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

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Текущее время в часовом поясе календаря
	now := uc.timeProvider.Now().In(uc.location)
	today := calendar.DateOf(now)

	// 2. Неделя для отображения
	weekOf := today
	if req.WeekOf != nil {
		weekOf = *req.WeekOf
	}
	if weekOf.StartOfWeek().Before(today.StartOfWeek()) || !withinHorizon(weekOf, today) {
		uc.logger.Warn("GetAvailability: week %s out of range (today=%s)", weekOf, today)
		return nil, fmt.Errorf("%w: week of %s", ErrWeekOutOfRange, weekOf)
	}

	// 3. Пакет (с откатом на пакет по умолчанию)
	pack, found := domain.FindPack(req.PackSlug)
	if !found {
		pack = domain.ResolvePack(req.PackSlug)
		if req.PackSlug != "" {
			uc.logger.Info("GetAvailability: unknown pack slug=%q, falling back to %s", req.PackSlug, pack.Slug)
		}
	}

	// 4. Порог и срок обратного звонка из одного и того же now
	threshold := uc.calendar.NextAvailability(now)
	deadline := uc.calendar.CallbackDeadline(now)

	if !uc.calendar.Holidays().Covers(today.Year()) {
		uc.logger.Warn("GetAvailability: holiday table does not cover year %d", today.Year())
	}

	uc.logger.Info("GetAvailability: now=%s threshold=%s deadline=%s pack=%s",
		now.Format(time.RFC3339), threshold, deadline.Format(time.RFC3339), pack.Slug)

	return &Response{
		Now:                     now,
		Threshold:               threshold,
		ThresholdDisplay:        calendar.FormatLong(threshold),
		CallbackDeadline:        deadline,
		CallbackDeadlineDisplay: calendar.FormatDeadline(deadline),
		Pack:                    pack,
		PackFallback:            !found,
		TimeSlots:               append([]string(nil), domain.TimeSlots...),
		Week:                    buildWeek(uc.calendar, weekOf, today, threshold),
	}, nil
}
