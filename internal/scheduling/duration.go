package scheduling

import "github.com/m04kA/SMC-SalonScheduler/internal/domain"

// Duration is the total time a set of services occupies on a staff timeline
type Duration struct {
	TotalMinutes  int // Σ(base + buffer)
	BufferMinutes int // Σ buffer
}

// ComputeDuration sums base and cleanup minutes of the catalog services whose
// id is in serviceIDs. Unknown ids contribute nothing; an id listed twice counts once.
func ComputeDuration(serviceIDs []string, catalog []*domain.Service) Duration {
	requested := make(map[string]struct{}, len(serviceIDs))
	for _, id := range serviceIDs {
		requested[id] = struct{}{}
	}

	var d Duration
	counted := make(map[string]struct{}, len(requested))
	for _, s := range catalog {
		if s == nil {
			continue
		}
		if _, ok := requested[s.ID]; !ok {
			continue
		}
		if _, dup := counted[s.ID]; dup {
			continue
		}
		counted[s.ID] = struct{}{}

		d.TotalMinutes += s.OccupiedMinutes()
		d.BufferMinutes += s.BufferCleanupMin
	}
	return d
}

// ServiceNames returns the names of the catalog services in the order of serviceIDs.
// Unknown ids are skipped.
func ServiceNames(serviceIDs []string, catalog []*domain.Service) []string {
	byID := make(map[string]*domain.Service, len(catalog))
	for _, s := range catalog {
		if s != nil {
			byID[s.ID] = s
		}
	}

	names := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if s, ok := byID[id]; ok {
			names = append(names, s.Name)
		}
	}
	return names
}
