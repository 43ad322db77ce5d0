package notifications

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
	"github.com/m04kA/nuisibook-booking/internal/domain"
	"github.com/m04kA/nuisibook-booking/internal/integrations/mailer"
	"github.com/m04kA/nuisibook-booking/internal/integrations/sms"
	"github.com/m04kA/nuisibook-booking/pkg/logger"
	"github.com/m04kA/nuisibook-booking/pkg/ptr"
)

type fakeEmail struct {
	sent []mailer.Message
	err  error
}

func (f *fakeEmail) Send(_ context.Context, msg mailer.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

type fakeSMS struct {
	sent []sms.Message
	err  error
}

func (f *fakeSMS) Send(_ context.Context, msg sms.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

type fakeMetrics struct {
	counts map[string]int
}

func (f *fakeMetrics) IncNotification(channel, outcome string) {
	if f.counts == nil {
		f.counts = map[string]int{}
	}
	f.counts[channel+"/"+outcome]++
}

func paris(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return loc
}

func testBooking(t *testing.T) *domain.Booking {
	date := calendar.NewDate(2025, time.May, 13)
	return &domain.Booking{
		ID:               uuid.MustParse("3f2a9c1e-0000-4000-8000-000000000001"),
		FirstName:        "Jean",
		LastName:         "Dupont",
		Email:            "jean@example.fr",
		Phone:            "06 12 34 56 78",
		Address:          "12 rue de la Paix",
		City:             "Paris",
		PostalCode:       "75002",
		TreatmentType:    "punaises-de-lit",
		AppointmentDate:  &date,
		AppointmentTime:  ptr.Ptr("10h00"),
		CallbackDeadline: time.Date(2025, time.May, 9, 15, 0, 0, 0, paris(t)),
		Status:           domain.StatusPending,
	}
}

func drain(t *testing.T, svc *Service) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(ctx))
}

func TestService_BookingCreated(t *testing.T) {
	email := &fakeEmail{}
	text := &fakeSMS{}
	metrics := &fakeMetrics{}
	svc := NewService(email, text, "+33600000000", paris(t), metrics, logger.Discard())

	svc.BookingCreated(context.Background(), testBooking(t))
	drain(t, svc)

	require.Len(t, email.sent, 1)
	msg := email.sent[0]
	assert.Equal(t, "jean@example.fr", msg.To)
	assert.Equal(t, "Jean Dupont", msg.ToName)
	assert.Equal(t, "Votre demande d'intervention 3f2a9c1e", msg.Subject)
	assert.Contains(t, msg.Text, "Pack traitement punaises de lit (4h)")
	assert.Contains(t, msg.Text, "mardi 13 mai 2025 à 10h00")
	assert.Contains(t, msg.Text, "avant le vendredi 9 mai 2025 à 15:00")

	require.Len(t, text.sent, 1)
	assert.Equal(t, "+33600000000", text.sent[0].To)
	assert.Contains(t, text.sent[0].Body, "Nouvelle demande 3f2a9c1e")
	assert.Contains(t, text.sent[0].Body, "75002 Paris")

	assert.Equal(t, 1, metrics.counts["email/sent"])
	assert.Equal(t, 1, metrics.counts["sms/sent"])
}

func TestService_BookingCreated_FlexibleWithoutDate(t *testing.T) {
	email := &fakeEmail{}
	text := &fakeSMS{}
	svc := NewService(email, text, "+33600000000", paris(t), &fakeMetrics{}, logger.Discard())

	b := testBooking(t)
	b.AppointmentDate = nil
	b.AppointmentTime = nil
	b.IsFlexible = true

	svc.BookingCreated(context.Background(), b)
	drain(t, svc)

	assert.Contains(t, email.sent[0].Text, "à convenir par téléphone")
	assert.Contains(t, text.sent[0].Body, "date à convenir")
}

func TestService_BookingCreated_FailuresAreSwallowed(t *testing.T) {
	email := &fakeEmail{err: errors.New("sendgrid down")}
	text := &fakeSMS{err: errors.New("twilio down")}
	metrics := &fakeMetrics{}
	svc := NewService(email, text, "+33600000000", paris(t), metrics, logger.Discard())

	assert.NotPanics(t, func() {
		svc.BookingCreated(context.Background(), testBooking(t))
		drain(t, svc)
	})
	assert.Equal(t, 1, metrics.counts["email/failed"])
	assert.Equal(t, 1, metrics.counts["sms/failed"])
}

func TestService_BookingCreated_Skipped(t *testing.T) {
	metrics := &fakeMetrics{}
	svc := NewService(nil, &fakeSMS{}, "", paris(t), metrics, logger.Discard())

	svc.BookingCreated(context.Background(), testBooking(t))
	drain(t, svc)

	assert.Equal(t, 1, metrics.counts["email/skipped"])
	assert.Equal(t, 1, metrics.counts["sms/skipped"])
}

func TestService_BookingCreated_IgnoresCancelledRequest(t *testing.T) {
	email := &fakeEmail{}
	svc := NewService(email, nil, "", paris(t), &fakeMetrics{}, logger.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.BookingCreated(ctx, testBooking(t))
	drain(t, svc)

	assert.Len(t, email.sent, 1)
}

// slowEmail держит отправку до release или отмены ctx
type slowEmail struct {
	release chan struct{}
	started chan struct{}
	err     error
}

func (s *slowEmail) Send(ctx context.Context, _ mailer.Message) error {
	close(s.started)
	select {
	case <-s.release:
		return nil
	case <-ctx.Done():
		s.err = ctx.Err()
		return s.err
	}
}

func TestService_BookingCreated_DoesNotBlockCaller(t *testing.T) {
	email := &slowEmail{release: make(chan struct{}), started: make(chan struct{})}
	metrics := &fakeMetrics{}
	svc := NewService(email, nil, "", paris(t), metrics, logger.Discard())

	returned := make(chan struct{})
	go func() {
		svc.BookingCreated(context.Background(), testBooking(t))
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("BookingCreated waited for the email sender")
	}

	<-email.started
	close(email.release)
	drain(t, svc)

	assert.Equal(t, 1, metrics.counts["email/sent"])
}

func TestService_Shutdown_RespectsDeadline(t *testing.T) {
	email := &slowEmail{release: make(chan struct{}), started: make(chan struct{})}
	svc := NewService(email, nil, "", paris(t), &fakeMetrics{}, logger.Discard())

	svc.BookingCreated(context.Background(), testBooking(t))
	<-email.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, svc.Shutdown(ctx), context.DeadlineExceeded)

	close(email.release)
	drain(t, svc)
}

func TestService_BookingCreated_AfterShutdownRunsInline(t *testing.T) {
	email := &fakeEmail{}
	svc := NewService(email, nil, "", paris(t), &fakeMetrics{}, logger.Discard())
	drain(t, svc)

	svc.BookingCreated(context.Background(), testBooking(t))
	assert.Len(t, email.sent, 1)
}
