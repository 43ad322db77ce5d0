package health

import (
	"net/http"

	"github.com/m04kA/nuisibook-booking/internal/api/handlers"
)

type Handler struct {
	service HealthService
}

func NewHandler(service HealthService) *Handler {
	return &Handler{service: service}
}

// Handle GET /health
// 200 если оба хранилища доступны, иначе 503 с результатами проверок
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report := h.service.Check(r.Context())

	status := http.StatusOK
	if !report.OK {
		status = http.StatusServiceUnavailable
	}
	handlers.RespondJSON(w, status, report)
}
