package calendar

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frenchCalendar(t *testing.T) *Calendar {
	t.Helper()
	set, err := NewHolidaySet(FrenchHolidays())
	require.NoError(t, err)
	return New(set)
}

func emptyCalendar() *Calendar {
	return New(MustHolidaySet(nil))
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestNextAvailability(t *testing.T) {
	cal := frenchCalendar(t)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "friday skips the weekend",
			now:  at(2025, time.May, 9, 11, 0),
			want: "2025-05-13",
		},
		{
			name: "tomorrow is a working day and counts as the first",
			now:  at(2025, time.May, 12, 9, 0),
			want: "2025-05-14",
		},
		{
			name: "late evening does not change the day count",
			now:  at(2025, time.May, 12, 23, 59),
			want: "2025-05-14",
		},
		{
			name: "saturday",
			now:  at(2025, time.May, 10, 10, 0),
			want: "2025-05-13",
		},
		{
			name: "holiday monday after a weekend",
			now:  at(2025, time.June, 6, 17, 0),
			want: "2025-06-11",
		},
		{
			name: "easter run friday holiday weekend monday holiday",
			now:  at(2025, time.April, 17, 12, 0),
			want: "2025-04-23",
		},
		{
			name: "two holidays in the same week",
			now:  at(2025, time.April, 30, 12, 0),
			want: "2025-05-05",
		},
		{
			name: "year boundary",
			now:  at(2025, time.December, 31, 8, 0),
			want: "2026-01-05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cal.NextAvailability(tt.now)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNextAvailability_UncoveredYearHasNoHolidays(t *testing.T) {
	cal := New(MustHolidaySet(map[int][]string{2025: {"2025-12-25"}}))

	// 2030-01-01 is a Tuesday and a real holiday, but 2030 is not in the table.
	got := cal.NextAvailability(at(2029, time.December, 31, 12, 0))
	assert.Equal(t, "2030-01-02", got.String())
	assert.False(t, cal.Holidays().Covers(2030))
}

func TestNextAvailability_Idempotent(t *testing.T) {
	cal := frenchCalendar(t)
	now := at(2025, time.May, 7, 15, 0)

	first := cal.NextAvailability(now)
	second := cal.NextAvailability(now)

	assert.Equal(t, first, second)
}

func TestNextAvailability_Invariants(t *testing.T) {
	cal := frenchCalendar(t)
	start := at(2024, time.January, 1, 0, 0)
	end := at(2027, time.January, 1, 0, 0)

	for now := start; now.Before(end); now = now.Add(7 * time.Hour) {
		threshold := cal.NextAvailability(now)

		require.False(t, threshold.IsWeekend(), "now=%s threshold=%s", now, threshold)
		require.False(t, cal.IsHoliday(threshold), "now=%s threshold=%s", now, threshold)

		workingDays := 0
		for d := DateOf(now).AddDays(1); !d.After(threshold); d = d.AddDays(1) {
			if cal.IsWorkingDay(d) {
				workingDays++
			}
		}
		require.Equal(t, AvailabilityWorkingDays, workingDays, "now=%s threshold=%s", now, threshold)
	}
}

func TestCallbackDeadline(t *testing.T) {
	tests := []struct {
		name string
		cal  *Calendar
		now  time.Time
		want time.Time
	}{
		{
			name: "afternoon spills into the next working day",
			cal:  emptyCalendar(),
			now:  at(2025, time.May, 7, 15, 0),
			want: at(2025, time.May, 8, 13, 0),
		},
		{
			name: "same case with 8 May listed as a holiday",
			cal:  frenchCalendar(t),
			now:  at(2025, time.May, 7, 15, 0),
			want: at(2025, time.May, 9, 13, 0),
		},
		{
			name: "friday evening moves to monday",
			cal:  frenchCalendar(t),
			now:  at(2025, time.May, 16, 19, 30),
			want: at(2025, time.May, 19, 16, 0),
		},
		{
			name: "exactly 18:00 counts as after hours",
			cal:  frenchCalendar(t),
			now:  at(2025, time.May, 16, 18, 0),
			want: at(2025, time.May, 19, 16, 0),
		},
		{
			name: "early morning snaps to 10:00 the same day",
			cal:  frenchCalendar(t),
			now:  at(2025, time.May, 13, 7, 45),
			want: at(2025, time.May, 13, 16, 0),
		},
		{
			name: "budget ending on the window close",
			cal:  frenchCalendar(t),
			now:  at(2025, time.May, 13, 12, 0),
			want: at(2025, time.May, 13, 18, 0),
		},
		{
			name: "minutes are dropped",
			cal:  frenchCalendar(t),
			now:  at(2025, time.May, 13, 15, 40),
			want: at(2025, time.May, 14, 13, 0),
		},
		{
			name: "sunday morning",
			cal:  frenchCalendar(t),
			now:  at(2025, time.May, 18, 8, 0),
			want: at(2025, time.May, 19, 16, 0),
		},
		{
			name: "holiday monday after a weekend",
			cal:  frenchCalendar(t),
			now:  at(2025, time.June, 6, 17, 0),
			want: at(2025, time.June, 10, 15, 0),
		},
		{
			name: "on a holiday itself",
			cal:  frenchCalendar(t),
			now:  at(2025, time.December, 25, 11, 0),
			want: at(2025, time.December, 26, 16, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cal.CallbackDeadline(tt.now)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestCallbackDeadline_KeepsLocation(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	cal := frenchCalendar(t)

	// DST starts on Sunday 2025-03-30 in Paris.
	now := time.Date(2025, time.March, 28, 17, 0, 0, 0, paris)
	got := cal.CallbackDeadline(now)

	assert.Equal(t, paris, got.Location())
	assert.Equal(t, "2025-03-31 15:00", got.Format("2006-01-02 15:04"))
}

func TestCallbackDeadline_Invariants(t *testing.T) {
	cal := frenchCalendar(t)
	start := at(2024, time.January, 1, 0, 0)
	end := at(2027, time.January, 1, 0, 0)

	for now := start; now.Before(end); now = now.Add(5 * time.Hour) {
		deadline := cal.CallbackDeadline(now)

		require.True(t, cal.IsWorkingDay(DateOf(deadline)), "now=%s deadline=%s", now, deadline)
		require.GreaterOrEqual(t, deadline.Hour(), WorkdayStartHour, "now=%s deadline=%s", now, deadline)
		require.LessOrEqual(t, deadline.Hour(), WorkdayEndHour, "now=%s deadline=%s", now, deadline)
		require.Zero(t, deadline.Minute())
		require.True(t, deadline.After(now), "now=%s deadline=%s", now, deadline)
		require.Equal(t, CallbackWorkingHours, workingHoursBetween(cal, now.Truncate(time.Hour), deadline),
			"now=%s deadline=%s", now, deadline)
	}
}

// workingHoursBetween counts whole working hours in [from, to).
func workingHoursBetween(cal *Calendar, from, to time.Time) int {
	count := 0
	for t := from; t.Before(to); t = t.Add(time.Hour) {
		if cal.IsWorkingDay(DateOf(t)) && t.Hour() >= WorkdayStartHour && t.Hour() < WorkdayEndHour {
			count++
		}
	}
	return count
}

func TestIsDateAvailable(t *testing.T) {
	cal := frenchCalendar(t)
	threshold := NewDate(2025, time.May, 13)

	tests := []struct {
		name string
		date Date
		want bool
	}{
		{"threshold itself", threshold, true},
		{"after threshold", NewDate(2025, time.May, 14), true},
		{"before threshold", NewDate(2025, time.May, 12), false},
		{"saturday after threshold", NewDate(2025, time.May, 17), false},
		{"sunday after threshold", NewDate(2025, time.May, 18), false},
		{"holiday after threshold", NewDate(2025, time.May, 29), false},
		{"next year", NewDate(2026, time.January, 2), true},
		{"listed holiday next year", NewDate(2026, time.January, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cal.IsDateAvailable(tt.date, threshold))
		})
	}
}

func TestIsDateAvailable_ThresholdFromNow(t *testing.T) {
	cal := frenchCalendar(t)
	now := at(2025, time.May, 9, 10, 0)
	threshold := cal.NextAvailability(now)

	for d := DateOf(now).AddDays(-3); d.Before(NewDate(2025, time.July, 1)); d = d.AddDays(1) {
		want := !d.Before(threshold) && cal.IsWorkingDay(d)
		assert.Equal(t, want, cal.IsDateAvailable(d, threshold), d.String())
	}
}

func TestIneligibility(t *testing.T) {
	cal := frenchCalendar(t)
	threshold := NewDate(2025, time.May, 13)

	assert.Equal(t, ReasonBeforeThreshold, cal.Ineligibility(NewDate(2025, time.May, 10), threshold))
	assert.Equal(t, ReasonWeekend, cal.Ineligibility(NewDate(2025, time.May, 17), threshold))
	assert.Equal(t, ReasonHoliday, cal.Ineligibility(NewDate(2025, time.May, 29), threshold))
	assert.Equal(t, ReasonNone, cal.Ineligibility(NewDate(2025, time.May, 14), threshold))

	for d := NewDate(2025, time.May, 1); d.Before(NewDate(2025, time.August, 1)); d = d.AddDays(1) {
		assert.Equal(t, cal.IsDateAvailable(d, threshold), cal.Ineligibility(d, threshold) == ReasonNone, d.String())
	}
}
