package delete_appointment

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/events"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/appointments"
	"github.com/m04kA/SMC-SalonScheduler/pkg/logger"
)

func TestHandle(t *testing.T) {
	store := memory.NewStore()
	memory.Seed(store, time.UTC, time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC))
	svc := appointments.NewService(store, store, events.Noop{}, nil, true, logger.Nop())

	r := mux.NewRouter()
	r.HandleFunc("/appointments/{id}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)

	del := func(id string) int {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/appointments/"+id, nil))
		return rec.Code
	}

	before := store.Count()
	assert.Equal(t, http.StatusNoContent, del("a1"))
	assert.Equal(t, before-1, store.Count())

	assert.Equal(t, http.StatusNotFound, del("a1"))
	assert.Equal(t, before-1, store.Count())
}
