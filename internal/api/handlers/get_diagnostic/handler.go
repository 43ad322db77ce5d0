package get_diagnostic

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/nuisibook-booking/internal/api/handlers"
	"github.com/m04kA/nuisibook-booking/internal/service/diagnostics"
)

const (
	msgMissingSlug   = "identifiant de diagnostic manquant"
	msgInvalidWait   = "paramètre wait invalide"
	msgNotFound      = "diagnostic introuvable"
	msgNotReady      = "le diagnostic n'est pas encore disponible, veuillez réessayer"
	msgNotConfigured = "service de diagnostic non configuré"
)

type Handler struct {
	service     DiagnosticService
	waitTimeout time.Duration
	logger      Logger
}

// NewHandler waitTimeout ограничивает ожидание при ?wait=true
func NewHandler(service DiagnosticService, waitTimeout time.Duration, logger Logger) *Handler {
	return &Handler{
		service:     service,
		waitTimeout: waitTimeout,
		logger:      logger,
	}
}

// Handle GET /api/v1/diagnostics/{slug}
// Query params: wait=true ждет появления диагностики (long polling)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	wait := false
	if raw := r.URL.Query().Get("wait"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /diagnostics/{slug} - Invalid wait param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWait)
			return
		}
		wait = parsed
	}

	ctx := r.Context()
	if wait {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.waitTimeout)
		defer cancel()
	}

	get := h.service.Get
	if wait {
		get = h.service.Wait
	}

	diagnostic, err := get(ctx, slug)
	if err != nil {
		switch {
		case errors.Is(err, diagnostics.ErrMissingSlug):
			h.logger.Warn("GET /diagnostics/{slug} - Missing slug")
			handlers.RespondBadRequest(w, msgMissingSlug)

		case errors.Is(err, diagnostics.ErrDiagnosticNotFound):
			h.logger.Info("GET /diagnostics/{slug} - Diagnostic not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, diagnostics.ErrNotReady):
			h.logger.Info("GET /diagnostics/{slug} - Diagnostic not ready: slug=%s", slug)
			handlers.RespondNotFound(w, msgNotReady)

		case errors.Is(err, diagnostics.ErrNotConfigured), errors.Is(err, diagnostics.ErrTableMissing):
			h.logger.Error("GET /diagnostics/{slug} - Diagnostic store not configured: %v", err)
			handlers.RespondServiceUnavailable(w, msgNotConfigured)

		default:
			h.logger.Error("GET /diagnostics/{slug} - Failed to get diagnostic: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /diagnostics/{slug} - Diagnostic retrieved: slug=%s, wait=%t", slug, wait)
	handlers.RespondJSON(w, http.StatusOK, FromDomainDiagnostic(diagnostic))
}
