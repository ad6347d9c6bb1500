package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Calendar converts absolute instants to local calendar days and minutes of day.
// Slot generation and conflict matching both go through it so they never disagree
// about which day an appointment belongs to.
type Calendar struct {
	loc *time.Location
}

// NewCalendar returns a calendar for loc (nil means time.Local).
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{loc: loc}
}

// Location returns the calendar time zone
func (c Calendar) Location() *time.Location {
	return c.loc
}

// StartOfDay returns local midnight of the day containing t
func (c Calendar) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

// NextDay returns local midnight of the day after the one containing t
func (c Calendar) NextDay(t time.Time) time.Time {
	y, m, d := t.In(c.loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, c.loc)
}

// SameDay reports whether a and b fall on the same local calendar day
func (c Calendar) SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.In(c.loc).Date()
	y2, m2, d2 := b.In(c.loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MinuteOfDay returns the local wall-clock minute of t on day.
// Instants before the day clamp to 0, instants on a later day clamp to MinutesPerDay.
func (c Calendar) MinuteOfDay(day, t time.Time) int {
	start := c.StartOfDay(day)
	if t.Before(start) {
		return 0
	}
	if !t.Before(c.NextDay(day)) {
		return domain.MinutesPerDay
	}
	local := t.In(c.loc)
	return local.Hour()*60 + local.Minute()
}

// EndMinuteOfDay is MinuteOfDay rounded up: an instant inside a minute
// yields the next minute, so a half-open interval ending there covers it.
func (c Calendar) EndMinuteOfDay(day, t time.Time) int {
	if t.Before(c.StartOfDay(day)) {
		return 0
	}
	m := c.MinuteOfDay(day, t)
	local := t.In(c.loc)
	if m < domain.MinutesPerDay && (local.Second() != 0 || local.Nanosecond() != 0) {
		return m + 1
	}
	return m
}

// At returns the instant for the given minute of the local day
func (c Calendar) At(day time.Time, minute int) time.Time {
	y, m, d := day.In(c.loc).Date()
	return time.Date(y, m, d, minute/60, minute%60, 0, 0, c.loc)
}

// Timeline is a minute-resolution availability map of one day.
// The zero value has every minute unavailable.
type Timeline [domain.MinutesPerDay]bool

// Open marks [start, end) as available
func (tl *Timeline) Open(start, end int) {
	tl.fill(start, end, true)
}

// Block marks [start, end) as unavailable
func (tl *Timeline) Block(start, end int) {
	tl.fill(start, end, false)
}

// IsFree reports whether every minute of [start, start+length) is available
func (tl *Timeline) IsFree(start, length int) bool {
	if start < 0 || length <= 0 || start+length > len(tl) {
		return false
	}
	for i := start; i < start+length; i++ {
		if !tl[i] {
			return false
		}
	}
	return true
}

func (tl *Timeline) fill(start, end int, v bool) {
	if start < 0 {
		start = 0
	}
	if end > len(tl) {
		end = len(tl)
	}
	for i := start; i < end; i++ {
		tl[i] = v
	}
}
