package check_date

import (
	"net/http"

	"github.com/m04kA/nuisibook-booking/internal/api/handlers"
	"github.com/m04kA/nuisibook-booking/internal/calendar"
	checkDate "github.com/m04kA/nuisibook-booking/internal/usecase/check_date"
)

const msgInvalidDate = "paramètre date invalide, format attendu AAAA-MM-JJ"

type Handler struct {
	useCase CheckDateUseCase
	logger  Logger
}

func NewHandler(useCase CheckDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/check?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := calendar.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability/check - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkDate.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /availability/check - Failed to check date: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/check - Date checked: date=%s, available=%t", date, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
