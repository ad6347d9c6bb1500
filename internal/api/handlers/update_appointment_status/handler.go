package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
	msgInvalidStatus      = "некорректный статус записи"
	msgNotFound           = "запись не найдена"
	msgSlotConflict       = "время записи уже занято другой записью"
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

// Handle PATCH /api/v1/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if details := handlers.Validate(&req); details != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Validation failed: %v", details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	appointment, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: id=%s, status=%s", id, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrSlotConflict):
			h.logger.Warn("PATCH /appointments/{id}/status - Slot conflict on reactivation: id=%s", id)
			handlers.RespondConflict(w, msgSlotConflict)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated: id=%s, status=%s", id, appointment.Status)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
