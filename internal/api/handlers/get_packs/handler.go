package get_packs

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/nuisibook-booking/internal/api/handlers"
	"github.com/m04kA/nuisibook-booking/internal/domain"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// List GET /api/v1/packs
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /packs - Catalog requested")
	handlers.RespondJSON(w, http.StatusOK, GetCatalogResponse())
}

// Get GET /api/v1/packs/{slug}
// Неизвестный slug не является ошибкой: возвращается пакет по умолчанию
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	pack, found := domain.FindPack(slug)
	if !found {
		pack = domain.ResolvePack(slug)
		h.logger.Warn("GET /packs/{slug} - Unknown pack, returning default: slug=%q, default=%s", slug, pack.Slug)
	}

	resp := fromDomainPack(pack)
	resp.Fallback = !found

	h.logger.Info("GET /packs/{slug} - Pack resolved: slug=%s", pack.Slug)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
