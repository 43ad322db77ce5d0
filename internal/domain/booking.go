package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is an intervention request submitted by a customer.
//
// A scheduled booking carries an appointment date and time slot. A flexible
// booking ("je ne sais pas encore") may carry neither: the professional calls
// the customer back before CallbackDeadline to agree on a date.
type Booking struct {
	ID uuid.UUID

	FirstName  string
	LastName   string
	Company    *string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string

	TreatmentType   string // pack slug
	AppointmentDate *calendar.Date
	AppointmentTime *string // one of TimeSlots
	IsFlexible      bool

	CallbackDeadline time.Time
	Status           BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reference is the short identifier shown to the customer.
func (b *Booking) Reference() string {
	return ShortReference(b.ID)
}

// FullName returns "First Last".
func (b *Booking) FullName() string {
	return b.FirstName + " " + b.LastName
}

// IsFinal returns true once the booking can no longer change status
func (b *Booking) IsFinal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanTransitionTo reports whether the booking may move to next
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if !next.IsValid() || b.IsFinal() {
		return false
	}
	return next != b.Status
}

// IsValid returns true for the four known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ShortReference returns the first ReferenceLength characters of id.
func ShortReference(id uuid.UUID) string {
	return id.String()[:ReferenceLength]
}
