package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/nuisibook-booking/internal/api/handlers"
	createBooking "github.com/m04kA/nuisibook-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgValidationFailed   = "Veuillez corriger les champs indiqués"
	msgDateNotAvailable   = "La date choisie n'est pas disponible"
	msgStoreNotConfigured = "La prise de rendez-vous en ligne est momentanément indisponible, merci de nous appeler"
	msgStoreUnavailable   = "Le service est momentanément indisponible, veuillez réessayer"

	fieldAppointmentDate = "appointment_date"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var (
			validationErr *createBooking.ValidationError
			dateErr       *createBooking.DateNotAvailableError
		)

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)

		case errors.As(err, &dateErr):
			h.logger.Warn("POST /bookings - Date not available: date=%s, reason=%s, threshold=%s",
				dateErr.Date, dateErr.Reason, dateErr.Threshold)
			handlers.RespondValidationError(w, msgDateNotAvailable, map[string]string{
				fieldAppointmentDate: handlers.ReasonMessage(dateErr.Reason, dateErr.Threshold),
			})

		case errors.Is(err, createBooking.ErrStoreNotConfigured):
			h.logger.Error("POST /bookings - Booking store not configured: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreNotConfigured)

		case errors.Is(err, createBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Booking store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, reference=%s",
		result.Booking.ID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
