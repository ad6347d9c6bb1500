package domain

import "time"

// DaySlots holds the free appointment starts found on one local day
type DaySlots struct {
	Date  time.Time
	Slots []time.Time
}

// IsEmpty returns true if no start time fits on this day
func (d *DaySlots) IsEmpty() bool {
	return len(d.Slots) == 0
}
