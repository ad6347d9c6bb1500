package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

func at(h, m int) time.Time {
	return time.Date(2025, 7, 10, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	base := domain.Interval{Start: at(11, 30), End: at(12, 0)}

	tests := []struct {
		name  string
		other domain.Interval
		want  bool
	}{
		{"partial overlap at start", domain.Interval{Start: at(11, 20), End: at(11, 40)}, true},
		{"partial overlap at end", domain.Interval{Start: at(11, 50), End: at(12, 30)}, true},
		{"contains", domain.Interval{Start: at(11, 0), End: at(13, 0)}, true},
		{"inside", domain.Interval{Start: at(11, 40), End: at(11, 45)}, true},
		{"touches before", domain.Interval{Start: at(11, 0), End: at(11, 30)}, false},
		{"touches after", domain.Interval{Start: at(12, 0), End: at(12, 30)}, false},
		{"disjoint", domain.Interval{Start: at(14, 0), End: at(15, 0)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(base, tt.other))
			assert.Equal(t, tt.want, Overlaps(tt.other, base), "overlap must be symmetric")
		})
	}
}

func TestFindConflict(t *testing.T) {
	existing := []*domain.Appointment{
		{ID: "a1", StaffID: "st1", StartAt: at(10, 0), EndAt: at(11, 5), Status: domain.StatusPlanned},
		{ID: "a2", StaffID: "st2", StartAt: at(12, 0), EndAt: at(13, 0), Status: domain.StatusPlanned},
		{ID: "a3", StaffID: "st1", StartAt: at(14, 0), EndAt: at(15, 0), Status: domain.StatusCanceled},
	}

	t.Run("overlap with same staff", func(t *testing.T) {
		c := FindConflict(domain.Interval{Start: at(11, 0), End: at(12, 0)}, "st1", existing, "")
		require.NotNil(t, c)
		assert.Equal(t, "a1", c.ID)
	})

	t.Run("other staff is ignored", func(t *testing.T) {
		assert.Nil(t, FindConflict(domain.Interval{Start: at(12, 0), End: at(12, 30)}, "st1", existing, ""))
	})

	t.Run("canceled is ignored", func(t *testing.T) {
		assert.Nil(t, FindConflict(domain.Interval{Start: at(14, 0), End: at(14, 30)}, "st1", existing, ""))
	})

	t.Run("excluded appointment is ignored", func(t *testing.T) {
		assert.Nil(t, FindConflict(domain.Interval{Start: at(10, 0), End: at(11, 40)}, "st1", existing, "a1"))
	})

	t.Run("back to back is allowed", func(t *testing.T) {
		assert.Nil(t, FindConflict(domain.Interval{Start: at(11, 5), End: at(12, 0)}, "st1", existing, ""))
	})
}
