package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/nuisibook-booking/internal/api/handlers"
	"github.com/m04kA/nuisibook-booking/internal/calendar"
	getAvailability "github.com/m04kA/nuisibook-booking/internal/usecase/get_availability"
)

const (
	msgInvalidWeek    = "paramètre week invalide, format attendu AAAA-MM-JJ"
	msgWeekOutOfRange = "semaine hors de la période de réservation"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: slug, week (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &getAvailability.Request{PackSlug: query.Get("slug")}

	if raw := query.Get("week"); raw != "" {
		week, err := calendar.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid week: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeek)
			return
		}
		req.WeekOf = &week
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getAvailability.ErrWeekOutOfRange) {
			h.logger.Warn("GET /availability - Week out of range: %v", err)
			handlers.RespondBadRequest(w, msgWeekOutOfRange)
			return
		}

		h.logger.Error("GET /availability - Failed to get availability: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Availability computed: threshold=%s, pack=%s, week=%s",
		result.Threshold, result.Pack.Slug, result.Week.Start)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
