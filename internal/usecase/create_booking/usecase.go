package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
	"github.com/m04kA/nuisibook-booking/internal/domain"
	bookingRepo "github.com/m04kA/nuisibook-booking/internal/infra/storage/booking"
	"github.com/m04kA/nuisibook-booking/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	metrics      Metrics
	calendar     *calendar.Calendar
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	notifier Notifier,
	metrics Metrics,
	cal *calendar.Calendar,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		metrics:      metrics,
		calendar:     cal,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация формы
	f, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: pack=%s, mode=%s, date=%v, time=%q",
		f.packSlug, f.mode(), f.date, ptr.Value(f.slot))

	// 2. Текущее время в часовом поясе календаря
	now := uc.timeProvider.Now().In(uc.location)
	threshold := uc.calendar.NextAvailability(now)

	// 3. Проверка даты по правилам календаря (и в гибком режиме, если дата указана)
	if f.date != nil {
		if reason := uc.calendar.Ineligibility(*f.date, threshold); reason != calendar.ReasonNone {
			uc.metrics.IncDateRejected(string(reason))
			uc.logger.Warn("CreateBooking: date %s rejected: reason=%s, threshold=%s", f.date, reason, threshold)
			return nil, &DateNotAvailableError{Date: *f.date, Threshold: threshold, Reason: reason}
		}
	}

	// 4. Формируем бронирование
	booking := f.toBooking(now)
	booking.ID = uuid.New()
	booking.CallbackDeadline = uc.calendar.CallbackDeadline(now)

	// 5. Сохраняем
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotConfigured),
			errors.Is(err, bookingRepo.ErrPermissionDenied),
			errors.Is(err, bookingRepo.ErrTableMissing):
			uc.logger.Error("CreateBooking: booking store misconfigured: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreNotConfigured, err)
		case errors.Is(err, bookingRepo.ErrUnavailable):
			uc.logger.Error("CreateBooking: booking store unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		default:
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	uc.metrics.IncBookingCreated(created.TreatmentType, f.mode())
	uc.logger.Info("CreateBooking: booking id=%s created, reference=%s, callback before %s",
		created.ID, created.Reference(), created.CallbackDeadline.Format(time.RFC3339))

	// 6. Уведомления (best effort)
	uc.notifier.BookingCreated(ctx, created)

	resp := &Response{
		Booking:                 created,
		Reference:               created.Reference(),
		Pack:                    domain.ResolvePack(created.TreatmentType),
		CallbackDeadlineDisplay: calendar.FormatDeadline(created.CallbackDeadline),
		Threshold:               threshold,
	}
	if created.AppointmentDate != nil {
		resp.AppointmentDisplay = calendar.FormatLong(*created.AppointmentDate)
	}

	return resp, nil
}
