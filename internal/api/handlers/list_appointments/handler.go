package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

const (
	msgInvalidQuery  = "некорректные параметры фильтра: from/to ожидаются в RFC 3339, includeCanceled true/false"
	msgInvalidFilter = "некорректный фильтр записей"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments listed: count=%d", len(list.Appointments))
	handlers.RespondJSON(w, http.StatusOK, list)
}
