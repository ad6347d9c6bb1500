package update_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.AppointmentID) == "" {
		return fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientID) == "" {
		return fmt.Errorf("%w: client_id is required", ErrInvalidInput)
	}
	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if len(req.ServiceIDs) > domain.MaxServicesPerVisit {
		return fmt.Errorf("%w: too many services, max %d", ErrInvalidInput, domain.MaxServicesPerVisit)
	}
	for _, id := range req.ServiceIDs {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: service id must not be empty", ErrInvalidInput)
		}
	}
	return nil
}
