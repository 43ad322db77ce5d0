package handlers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// BookingIDFromPath разбирает {bookingId} из пути
func BookingIDFromPath(r *http.Request) (uuid.UUID, error) {
	raw := mux.Vars(r)["bookingId"]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid booking id %q: %w", raw, err)
	}
	return id, nil
}
