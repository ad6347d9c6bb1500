package find_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.StaffID) == "" {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if len(req.ServiceIDs) > domain.MaxServicesPerVisit {
		return fmt.Errorf("%w: too many services, max %d", ErrInvalidInput, domain.MaxServicesPerVisit)
	}
	if len(req.Dates) > domain.MaxSearchDays {
		return fmt.Errorf("%w: too many dates, max %d", ErrInvalidInput, domain.MaxSearchDays)
	}
	return nil
}
