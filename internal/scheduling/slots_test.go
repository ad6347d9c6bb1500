package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

var testDay = time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

func dayAt(day time.Time, h, m int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

func planned(id, staffID string, start, end time.Time) *domain.Appointment {
	return &domain.Appointment{ID: id, StaffID: staffID, StartAt: start, EndAt: end, Status: domain.StatusPlanned}
}

func TestFindAvailableSlots_NonPositiveDuration(t *testing.T) {
	assert.Empty(t, FindAvailableSlots(testDay, 0, "st1", nil, DefaultWorkingWindow()))
	assert.Empty(t, FindAvailableSlots(testDay, -10, "st1", nil, DefaultWorkingWindow()))
}

func TestFindAvailableSlots_EmptyDayReturnsWholeWindow(t *testing.T) {
	slots := FindAvailableSlots(testDay, 65, "st1", nil, DefaultWorkingWindow())

	// 09:00 … 19:55 with a 5 minute step
	require.Len(t, slots, 132)
	assert.Equal(t, dayAt(testDay, 9, 0), slots[0])
	assert.Equal(t, dayAt(testDay, 19, 55), slots[len(slots)-1])
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 5*time.Minute, slots[i].Sub(slots[i-1]))
	}
}

func TestFindAvailableSlots_BusyMiddayBlock(t *testing.T) {
	appointments := []*domain.Appointment{
		planned("a3", "st1", dayAt(testDay, 12, 0), dayAt(testDay, 15, 15)),
	}

	slots := FindAvailableSlots(testDay, 65, "st1", appointments, DefaultWorkingWindow())

	// before the block: 09:00 … 10:55 (the 10:55 visit ends exactly at 12:00)
	// after the block: 15:15 … 19:55
	require.Len(t, slots, 24+57)
	assert.Equal(t, dayAt(testDay, 9, 0), slots[0])
	assert.Equal(t, dayAt(testDay, 10, 55), slots[23])
	assert.Equal(t, dayAt(testDay, 15, 15), slots[24])
	assert.Equal(t, dayAt(testDay, 19, 55), slots[len(slots)-1])

	busy := appointments[0].Interval()
	for _, s := range slots {
		assert.False(t, Overlaps(domain.Interval{Start: s, End: s.Add(65 * time.Minute)}, busy), "slot %s overlaps", s)
	}
}

func TestFindAvailableSlots_SubMinuteBookingBlocksWholeMinute(t *testing.T) {
	start := dayAt(testDay, 10, 0).Add(30 * time.Second)
	appointments := []*domain.Appointment{
		planned("a1", "st1", start, start.Add(65*time.Minute)),
	}

	slots := FindAvailableSlots(testDay, 65, "st1", appointments, DefaultWorkingWindow())

	assert.NotContains(t, slots, dayAt(testDay, 11, 5))
	assert.Contains(t, slots, dayAt(testDay, 11, 10))
	// 09:00 + 65 minutes runs into the booking
	assert.NotContains(t, slots, dayAt(testDay, 9, 0))

	busy := appointments[0].Interval()
	for _, s := range slots {
		assert.False(t, Overlaps(domain.Interval{Start: s, End: s.Add(65 * time.Minute)}, busy), "slot %s overlaps", s)
	}
}

func TestFindAvailableSlots_IgnoresOtherStaffAndCanceled(t *testing.T) {
	canceled := planned("a2", "st1", dayAt(testDay, 9, 0), dayAt(testDay, 21, 0))
	canceled.Status = domain.StatusCanceled
	appointments := []*domain.Appointment{
		planned("a1", "st2", dayAt(testDay, 9, 0), dayAt(testDay, 21, 0)),
		canceled,
	}

	slots := FindAvailableSlots(testDay, 65, "st1", appointments, DefaultWorkingWindow())
	assert.Len(t, slots, 132)
}

func TestFindAvailableSlots_OtherDaysDoNotBlock(t *testing.T) {
	tomorrow := testDay.AddDate(0, 0, 1)
	appointments := []*domain.Appointment{
		planned("a1", "st1", dayAt(tomorrow, 9, 0), dayAt(tomorrow, 21, 0)),
	}

	assert.Len(t, FindAvailableSlots(testDay, 65, "st1", appointments, DefaultWorkingWindow()), 132)
	assert.Empty(t, FindAvailableSlots(tomorrow, 65, "st1", appointments, DefaultWorkingWindow()))
}

func TestFindAvailableSlots_FullyBookedDayIsEmpty(t *testing.T) {
	appointments := []*domain.Appointment{
		planned("a1", "st1", dayAt(testDay, 9, 0), dayAt(testDay, 15, 0)),
		planned("a2", "st1", dayAt(testDay, 15, 0), dayAt(testDay, 21, 0)),
	}

	slots := FindAvailableSlots(testDay, 30, "st1", appointments, DefaultWorkingWindow())
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestFindAvailableSlots_GapMustFitWholeDuration(t *testing.T) {
	// 60 minute gap between 10:00 and 11:00 cannot host a 65 minute visit
	appointments := []*domain.Appointment{
		planned("a1", "st1", dayAt(testDay, 9, 0), dayAt(testDay, 10, 0)),
		planned("a2", "st1", dayAt(testDay, 11, 0), dayAt(testDay, 21, 0)),
	}

	assert.Empty(t, FindAvailableSlots(testDay, 65, "st1", appointments, DefaultWorkingWindow()))

	slots := FindAvailableSlots(testDay, 60, "st1", appointments, DefaultWorkingWindow())
	assert.Equal(t, []time.Time{dayAt(testDay, 10, 0)}, slots)
}

func TestFindAvailableSlots_UsesLocalDay(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	day := time.Date(2025, 7, 10, 0, 0, 0, 0, loc)

	// 07:00 UTC is 10:00 local; the appointment belongs to the local day
	appointments := []*domain.Appointment{
		planned("a1", "st1",
			time.Date(2025, 7, 10, 7, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 10, 8, 5, 0, 0, time.UTC)),
	}

	slots := FindAvailableSlots(day, 65, "st1", appointments, DefaultWorkingWindow())
	for _, s := range slots {
		assert.Equal(t, loc, s.Location())
		assert.False(t, Overlaps(domain.Interval{Start: s, End: s.Add(65 * time.Minute)}, appointments[0].Interval()))
	}
	require.NotEmpty(t, slots)
	assert.Equal(t, time.Date(2025, 7, 10, 11, 5, 0, 0, loc), slots[0])
}

func TestFindAvailableSlots_AppointmentCrossingMidnight(t *testing.T) {
	window := WorkingWindow{StartMinute: 0, EndMinute: domain.MinutesPerDay, StepMinutes: 60}
	appointments := []*domain.Appointment{
		planned("a1", "st1", dayAt(testDay, 22, 0), dayAt(testDay.AddDate(0, 0, 1), 2, 0)),
	}

	next := FindAvailableSlots(testDay.AddDate(0, 0, 1), 60, "st1", appointments, window)
	require.NotEmpty(t, next)
	assert.Equal(t, dayAt(testDay.AddDate(0, 0, 1), 2, 0), next[0])

	same := FindAvailableSlots(testDay, 60, "st1", appointments, window)
	assert.Equal(t, dayAt(testDay, 21, 0), same[len(same)-1])
}

func TestFindAvailableSlots_CustomWindowAndStep(t *testing.T) {
	window := WorkingWindow{StartMinute: 10 * 60, EndMinute: 12 * 60, StepMinutes: 30}

	slots := FindAvailableSlots(testDay, 60, "st1", nil, window)
	assert.Equal(t, []time.Time{
		dayAt(testDay, 10, 0),
		dayAt(testDay, 10, 30),
		dayAt(testDay, 11, 0),
	}, slots)
}

func TestFindAvailableSlots_ZeroStepFallsBackToDefault(t *testing.T) {
	window := WorkingWindow{StartMinute: 10 * 60, EndMinute: 11 * 60}
	slots := FindAvailableSlots(testDay, 60, "st1", nil, window)
	assert.Equal(t, []time.Time{dayAt(testDay, 10, 0)}, slots)
}

func TestFindAvailableSlots_Repeatable(t *testing.T) {
	appointments := []*domain.Appointment{
		planned("a1", "st1", dayAt(testDay, 12, 0), dayAt(testDay, 15, 15)),
	}
	first := FindAvailableSlots(testDay, 65, "st1", appointments, DefaultWorkingWindow())
	second := FindAvailableSlots(testDay, 65, "st1", appointments, DefaultWorkingWindow())
	assert.Equal(t, first, second)
}

func TestFindAvailableSlotsInRange_FiltersEmptyDays(t *testing.T) {
	day2 := testDay.AddDate(0, 0, 1)
	day3 := testDay.AddDate(0, 0, 2)
	appointments := []*domain.Appointment{
		planned("a1", "st1", dayAt(day2, 9, 0), dayAt(day2, 21, 0)),
	}

	days, err := FindAvailableSlotsInRange(context.Background(),
		[]time.Time{day3, day2, testDay}, 65, "st1", appointments, DefaultWorkingWindow())
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, testDay, days[0].Date)
	assert.Equal(t, day3, days[1].Date)
	assert.Len(t, days[0].Slots, 132)
}

func TestFindAvailableSlotsInRange_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindAvailableSlotsInRange(ctx, []time.Time{testDay}, 65, "st1", nil, DefaultWorkingWindow())
	assert.ErrorIs(t, err, context.Canceled)
}
