package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/nuisibook-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Notifier отправляет уведомления о новом бронировании.
// Ошибки доставки обрабатываются внутри и не влияют на результат use case.
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking)
}

// Metrics доменные метрики бронирований
type Metrics interface {
	IncBookingCreated(pack, mode string)
	IncDateRejected(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
