package list_clients

import (
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
)

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

// Handle GET /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListClients(r.Context())
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
