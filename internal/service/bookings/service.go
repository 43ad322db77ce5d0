package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	bookingRepo "github.com/m04kA/nuisibook-booking/internal/infra/storage/booking"
	"github.com/m04kA/nuisibook-booking/internal/service/bookings/models"
)

// Service сервис для чтения и смены статуса бронирований
type Service struct {
	bookingRepo BookingRepository
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// Даты в ответах приводятся к location.
func NewService(bookingRepo BookingRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		location:    location,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("GetByID: failed to get booking id=%s: %v", id, err)
		return nil, s.mapRepoError("GetByID", err)
	}

	booking.CallbackDeadline = booking.CallbackDeadline.In(s.location)

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// UpdateStatus меняет статус бронирования.
// Из completed и cancelled выйти нельзя.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	next, ok := models.ToDomainBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn("UpdateStatus: failed to get booking id=%s: %v", id, err)
		return nil, s.mapRepoError("UpdateStatus", err)
	}

	if !booking.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: transition %s -> %s refused for booking id=%s", booking.Status, next, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, booking.Status, next)
	if err != nil {
		s.logger.Warn("UpdateStatus: failed to update booking id=%s: %v", id, err)
		return nil, s.mapRepoError("UpdateStatus", err)
	}

	updated.CallbackDeadline = updated.CallbackDeadline.In(s.location)

	s.logger.Info("UpdateStatus: booking id=%s moved %s -> %s", id, booking.Status, next)
	return models.FromDomainBooking(updated), nil
}

func (s *Service) mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		return ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrStatusConflict):
		return ErrConflict
	case errors.Is(err, bookingRepo.ErrNotConfigured),
		errors.Is(err, bookingRepo.ErrPermissionDenied),
		errors.Is(err, bookingRepo.ErrTableMissing):
		return fmt.Errorf("%w: %s: %v", ErrStoreNotConfigured, op, err)
	case errors.Is(err, bookingRepo.ErrUnavailable):
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
	default:
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
