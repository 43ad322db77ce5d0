package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolvePack(t *testing.T) {
	assert.Equal(t, "punaises-de-lit", ResolvePack("punaises-de-lit").Slug)
	assert.Equal(t, "4h", ResolvePack("punaises-de-lit").Duration)
	assert.Equal(t, DefaultPackSlug, ResolvePack("").Slug)
	assert.Equal(t, DefaultPackSlug, ResolvePack("fourmis").Slug)
}

func TestIsValidTimeSlot(t *testing.T) {
	assert.True(t, IsValidTimeSlot("08h00"))
	assert.True(t, IsValidTimeSlot("17h00"))
	assert.False(t, IsValidTimeSlot("09h00"))
	assert.False(t, IsValidTimeSlot("10:00"))
}

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusPending, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusPending, BookingStatus("archived"), false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.from}
		assert.Equal(t, tt.want, b.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestBooking_Reference(t *testing.T) {
	b := &Booking{ID: uuid.MustParse("3f2a9c1e-5b6d-4e7f-8a9b-0c1d2e3f4a5b")}
	assert.Equal(t, "3f2a9c1e", b.Reference())
}
