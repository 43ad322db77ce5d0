package get_diagnostic_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/nuisibook-booking/pkg/logger"
)

type stubService map[string]bool

func (s stubService) IsAvailable(_ context.Context, slug string) bool { return s[slug] }

func TestHandler(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/diagnostics/{slug}/status",
		NewHandler(stubService{"pret": true}, logger.Discard()).Handle)

	for slug, want := range map[string]bool{"pret": true, "pas-pret": false} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/diagnostics/"+slug+"/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, slug, body.Slug)
		assert.Equal(t, want, body.Available)
	}
}
