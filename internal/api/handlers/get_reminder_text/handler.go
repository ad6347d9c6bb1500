package get_reminder_text

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog"
)

const (
	msgClientNotFound  = "клиент не найден"
	msgServiceNotFound = "услуга не найдена"
	msgServiceRequired = "у клиента нет визитов, укажите serviceId"
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

// Handle GET /api/v1/clients/{clientId}/reminder-text
// Query params: serviceId (optional), lang (optional, RU | EN)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]
	serviceID := r.URL.Query().Get("serviceId")
	lang := r.URL.Query().Get("lang")

	text, err := h.service.GetReminderText(r.Context(), clientID, serviceID, lang)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrClientNotFound):
			h.logger.Warn("GET /clients/{id}/reminder-text - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("GET /clients/{id}/reminder-text - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/reminder-text - No service to remind about: client_id=%s", clientID)
			handlers.RespondBadRequest(w, msgServiceRequired)

		default:
			h.logger.Error("GET /clients/{id}/reminder-text - Failed to build reminder: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, text)
}
