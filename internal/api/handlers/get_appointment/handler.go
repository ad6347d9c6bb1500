package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/appointments"
)

const msgNotFound = "запись не найдена"

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

// Handle GET /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	appointment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			h.logger.Warn("GET /appointments/{id} - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /appointments/{id} - Failed to get appointment: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, appointment)
}
