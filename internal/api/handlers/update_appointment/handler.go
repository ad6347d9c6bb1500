package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/update_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgValidationFailed    = "ошибка валидации запроса"
	msgInvalidAppointment  = "некорректные данные записи"
	msgAppointmentNotFound = "запись не найдена"
	msgClientNotFound      = "клиент не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgSlotConflict        = "новая длительность пересекается с другой записью"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if details := handlers.Validate(&req); details != nil {
		h.logger.Warn("PUT /appointments/{id} - Validation failed: %v", details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id))
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, updateAppointment.ErrClientNotFound):
			h.logger.Warn("PUT /appointments/{id} - Client not found: id=%s, client_id=%s", id, req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, updateAppointment.ErrServiceNotFound):
			h.logger.Warn("PUT /appointments/{id} - Services not found: id=%s, service_ids=%v", id, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateAppointment.ErrSlotConflict):
			h.logger.Warn("PUT /appointments/{id} - Slot conflict: id=%s", id)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid appointment: id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidAppointment)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /appointments/{id} - Appointment updated: id=%s, end_at=%s", id, response.EndAt)
	handlers.RespondJSON(w, http.StatusOK, response)
}
