package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgValidationFailed    = "ошибка валидации запроса"
	msgInvalidStartAt      = "некорректное время начала, ожидается RFC 3339"
	msgInvalidAppointment  = "некорректные данные записи"
	msgClientNotFound      = "клиент не найден"
	msgStaffNotFound       = "сотрудник не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgStaffNotSchedulable = "к этому сотруднику нельзя записать клиента"
	msgSlotConflict        = "выбранное время пересекается с другой записью"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if details := handlers.Validate(&req); details != nil {
		h.logger.Warn("POST /appointments - Validation failed: %v", details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse startAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: staff_id=%s, start_at=%s", req.StaffID, req.StartAt)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%s", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrStaffNotFound):
			h.logger.Warn("POST /appointments - Staff not found: staff_id=%s", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Services not found: service_ids=%v", req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrStaffNotSchedulable):
			h.logger.Warn("POST /appointments - Staff not schedulable: staff_id=%s", req.StaffID)
			handlers.RespondBadRequest(w, msgStaffNotSchedulable)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid appointment: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAppointment)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%s, staff_id=%s, error=%v",
				req.ClientID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: id=%s, client_id=%s, staff_id=%s, %s-%s",
		result.ID, result.ClientID, result.StaffID, response.StartAt, response.EndAt)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
