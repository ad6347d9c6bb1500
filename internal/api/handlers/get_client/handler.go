package get_client

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog"
)

const msgClientNotFound = "клиент не найден"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	client, err := h.service.GetClient(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, catalog.ErrClientNotFound) {
			h.logger.Warn("GET /clients/{id} - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)
			return
		}
		h.logger.Error("GET /clients/{id} - Failed to get client: client_id=%s, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, client)
}
