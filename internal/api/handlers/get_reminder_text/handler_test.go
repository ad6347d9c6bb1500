package get_reminder_text

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/assistant"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonScheduler/pkg/logger"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	store := memory.NewStore()
	memory.Seed(store, time.UTC, time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC))

	svc := catalog.NewService(store, store, assistant.New(nil, 0, logger.Nop()), assistant.LanguageRU, logger.Nop())

	r := mux.NewRouter()
	r.HandleFunc("/clients/{clientId}/reminder-text", NewHandler(svc, logger.Nop()).Handle)
	return r
}

func get(r http.Handler, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Fallback(t *testing.T) {
	rec := get(newRouter(t), "/clients/1/reminder-text?serviceId=s4")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.ClientID)
	assert.Contains(t, resp.Text, "Анна")
}

func TestHandle_ErrorMapping(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusNotFound, get(r, "/clients/404/reminder-text").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/clients/1/reminder-text?serviceId=zzz").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/clients/4/reminder-text").Code)
}
