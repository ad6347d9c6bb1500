package delete_appointment

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

// Handle DELETE /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
