package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/nuisibook-booking/internal/domain"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"

	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

const sendTimeout = 10 * time.Second

// Service уведомляет клиента и специалиста о новом бронировании.
// Отправка идет в фоне, ошибки доставки только логируются и считаются в метриках.
type Service struct {
	email        EmailSender
	sms          SMSSender
	professional string // номер специалиста для SMS
	location     *time.Location
	metrics      Metrics
	logger       Logger

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
}

// NewService создает сервис уведомлений. Пустой professional отключает SMS.
func NewService(email EmailSender, sms SMSSender, professional string, location *time.Location, metrics Metrics, logger Logger) *Service {
	return &Service{
		email:        email,
		sms:          sms,
		professional: professional,
		location:     location,
		metrics:      metrics,
		logger:       logger,
	}
}

// BookingCreated запускает отправку письма клиенту и SMS специалисту и
// сразу возвращается. После Shutdown отправка выполняется синхронно.
func (s *Service) BookingCreated(ctx context.Context, booking *domain.Booking) {
	// уведомления не должны обрываться вместе с HTTP запросом
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.send(ctx, booking)
		return
	}
	s.inflight.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.inflight.Done()
		s.send(ctx, booking)
	}()
}

// Shutdown ждет завершения фоновых отправок или истечения ctx
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.logger.Warn("Notifications: shutdown before pending notifications finished: %v", ctx.Err())
		return ctx.Err()
	}
}

func (s *Service) send(ctx context.Context, booking *domain.Booking) {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	s.sendEmail(ctx, booking)
	s.sendSMS(ctx, booking)
}

func (s *Service) sendEmail(ctx context.Context, booking *domain.Booking) {
	if s.email == nil || booking.Email == "" {
		s.metrics.IncNotification(ChannelEmail, OutcomeSkipped)
		return
	}

	if err := s.email.Send(ctx, customerEmail(booking, s.location)); err != nil {
		s.metrics.IncNotification(ChannelEmail, OutcomeFailed)
		s.logger.Error("Notifications: email for booking id=%s failed: %v", booking.ID, err)
		return
	}

	s.metrics.IncNotification(ChannelEmail, OutcomeSent)
	s.logger.Info("Notifications: email sent for booking id=%s", booking.ID)
}

func (s *Service) sendSMS(ctx context.Context, booking *domain.Booking) {
	if s.sms == nil || s.professional == "" {
		s.metrics.IncNotification(ChannelSMS, OutcomeSkipped)
		return
	}

	if err := s.sms.Send(ctx, professionalSMS(booking, s.professional, s.location)); err != nil {
		s.metrics.IncNotification(ChannelSMS, OutcomeFailed)
		s.logger.Error("Notifications: sms for booking id=%s failed: %v", booking.ID, err)
		return
	}

	s.metrics.IncNotification(ChannelSMS, OutcomeSent)
	s.logger.Info("Notifications: sms sent for booking id=%s", booking.ID)
}
