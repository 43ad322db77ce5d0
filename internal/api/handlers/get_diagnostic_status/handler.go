package get_diagnostic_status

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/nuisibook-booking/internal/api/handlers"
)

// StatusResponse HTTP response model
type StatusResponse struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

type Handler struct {
	service DiagnosticService
	logger  Logger
}

func NewHandler(service DiagnosticService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/diagnostics/{slug}/status
// Ошибки хранилища не отдаются клиенту: диагностика считается недоступной
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	available := h.service.IsAvailable(r.Context(), slug)

	h.logger.Info("GET /diagnostics/{slug}/status - slug=%s, available=%t", slug, available)
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Slug: slug, Available: available})
}
