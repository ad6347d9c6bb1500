package scheduling

import "github.com/m04kA/SMC-SalonScheduler/internal/domain"

// Overlaps reports whether two half-open intervals intersect.
// An interval ending exactly when the other begins does not overlap it.
func Overlaps(a, b domain.Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// FindConflict returns the first active appointment of staffID whose interval
// overlaps candidate, or nil. The appointment with id excludeID is ignored,
// so an update can be checked against everything but itself.
func FindConflict(candidate domain.Interval, staffID string, existing []*domain.Appointment, excludeID string) *domain.Appointment {
	for _, a := range existing {
		if a == nil || a.StaffID != staffID || !a.IsActive() {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if Overlaps(candidate, a.Interval()) {
			return a
		}
	}
	return nil
}
