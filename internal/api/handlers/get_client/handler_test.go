package get_client

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

func TestHandle(t *testing.T) {
	store := memory.NewStore()
	memory.Seed(store, time.UTC, time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC))
	svc := catalog.NewService(store, store, assistant.New(nil, 0, logger.Nop()), assistant.LanguageRU, logger.Nop())

	r := mux.NewRouter()
	r.HandleFunc("/clients/{clientId}", NewHandler(svc, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients/3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var client models.ClientResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &client))
	assert.Equal(t, "Ольга Сидорова", client.Name)
	assert.Equal(t, "call", client.PreferredChannel)
	assert.Equal(t, []string{}, client.Tags)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients/404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
