package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	findSlots "github.com/m04kA/SMC-SalonScheduler/internal/usecase/find_available_slots"
)

const (
	msgMissingServiceIDs   = "нужно указать хотя бы одну услугу (serviceIds)"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest      = "некорректные параметры поиска"
	msgStaffNotFound       = "сотрудник не найден"
	msgStaffNotSchedulable = "к этому сотруднику нельзя записать клиента"
)

type Handler struct {
	useCase FindAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/available-slots
// Query params: serviceIds (required, через запятую), dates (optional, YYYY-MM-DD через запятую)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID := mux.Vars(r)["staffId"]

	serviceIDs := handlers.QueryList(r, "serviceIds")
	if len(serviceIDs) == 0 {
		h.logger.Warn("GET /staff/{id}/available-slots - Missing service IDs: staff_id=%s", staffID)
		handlers.RespondBadRequest(w, msgMissingServiceIDs)
		return
	}

	useCaseReq, err := ToUseCaseRequest(staffID, serviceIDs, handlers.QueryList(r, "dates"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findSlots.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/available-slots - Staff not found: staff_id=%s", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, findSlots.ErrStaffNotSchedulable):
			h.logger.Warn("GET /staff/{id}/available-slots - Staff not schedulable: staff_id=%s", staffID)
			handlers.RespondBadRequest(w, msgStaffNotSchedulable)

		case errors.Is(err, domain.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/available-slots - Invalid request: staff_id=%s, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /staff/{id}/available-slots - Failed to find slots: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /staff/{id}/available-slots - Slots found: staff_id=%s, services=%v, days=%d",
		staffID, serviceIDs, len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
