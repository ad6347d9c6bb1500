package quote_duration

import (
	"net/http"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
)

type Handler struct {
	quoter DurationQuoter
	logger Logger
}

func NewHandler(quoter DurationQuoter, logger Logger) *Handler {
	return &Handler{
		quoter: quoter,
		logger: logger,
	}
}

// Handle POST /api/v1/durations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /durations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if details := handlers.Validate(&req); details != nil {
		h.logger.Warn("POST /durations - Validation failed: %v", details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	quote, err := h.quoter.QuoteDuration(r.Context(), req.ServiceIDs)
	if err != nil {
		h.logger.Error("POST /durations - Failed to quote duration: services=%v, error=%v", req.ServiceIDs, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, QuoteResponse{
		TotalMinutes:  quote.TotalMinutes,
		BufferMinutes: quote.BufferMinutes,
	})
}
