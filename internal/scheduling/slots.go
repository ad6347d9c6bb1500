package scheduling

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// WorkingWindow describes schedulable minutes of a day and the start granularity
type WorkingWindow struct {
	StartMinute int // first schedulable minute, inclusive
	EndMinute   int // end of the day window, exclusive
	StepMinutes int // minimum schedulable increment
}

// DefaultWorkingWindow returns 09:00–21:00 with a 5 minute step
func DefaultWorkingWindow() WorkingWindow {
	return WorkingWindow{
		StartMinute: domain.DefaultWorkStartMinute,
		EndMinute:   domain.DefaultWorkEndMinute,
		StepMinutes: domain.DefaultStepMinutes,
	}
}

func (w WorkingWindow) normalized() WorkingWindow {
	if w.StartMinute < 0 {
		w.StartMinute = 0
	}
	if w.EndMinute > domain.MinutesPerDay {
		w.EndMinute = domain.MinutesPerDay
	}
	if w.StepMinutes <= 0 {
		w.StepMinutes = domain.DefaultStepMinutes
	}
	return w
}

// FindAvailableSlots returns every start time on the local day of day (in day's
// location) at which a visit of requiredMinutes fits into the working window
// without touching an active appointment of staffID. Results are ascending.
func FindAvailableSlots(
	day time.Time,
	requiredMinutes int,
	staffID string,
	appointments []*domain.Appointment,
	window WorkingWindow,
) []time.Time {
	slots := []time.Time{}
	if requiredMinutes <= 0 {
		return slots
	}

	cal := NewCalendar(day.Location())
	w := window.normalized()

	// Шаг 1: отмечаем рабочие часы как доступные
	var tl Timeline
	tl.Open(w.StartMinute, w.EndMinute)

	// Шаг 2: блокируем занятые минуты мастера в этот локальный день
	dayStart := cal.StartOfDay(day)
	dayEnd := cal.NextDay(day)
	dayInterval := domain.Interval{Start: dayStart, End: dayEnd}
	for _, a := range appointments {
		if a == nil || a.StaffID != staffID || !a.IsActive() {
			continue
		}
		if !Overlaps(a.Interval(), dayInterval) {
			continue
		}
		tl.Block(cal.MinuteOfDay(day, a.StartAt), cal.EndMinuteOfDay(day, a.EndAt))
	}

	// Шаг 3: ищем непрерывные свободные отрезки нужной длины
	for m := w.StartMinute; m <= w.EndMinute-requiredMinutes; m += w.StepMinutes {
		if tl.IsFree(m, requiredMinutes) {
			slots = append(slots, cal.At(day, m))
		}
	}

	return slots
}

// FindAvailableSlotsInRange runs FindAvailableSlots for each day concurrently and
// returns only days with at least one slot, ordered by date. appointments is
// treated as an immutable snapshot shared by all workers.
func FindAvailableSlotsInRange(
	ctx context.Context,
	days []time.Time,
	requiredMinutes int,
	staffID string,
	appointments []*domain.Appointment,
	window WorkingWindow,
) ([]domain.DaySlots, error) {
	results := make([]domain.DaySlots, len(days))

	g, gctx := errgroup.WithContext(ctx)
	for i, day := range days {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = domain.DaySlots{
				Date:  NewCalendar(day.Location()).StartOfDay(day),
				Slots: FindAvailableSlots(day, requiredMinutes, staffID, appointments, window),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	nonEmpty := make([]domain.DaySlots, 0, len(results))
	for _, r := range results {
		if !r.IsEmpty() {
			nonEmpty = append(nonEmpty, r)
		}
	}
	sort.Slice(nonEmpty, func(i, j int) bool {
		return nonEmpty[i].Date.Before(nonEmpty[j].Date)
	})

	return nonEmpty, nil
}
