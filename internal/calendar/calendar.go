// Package calendar computes business-day availability and callback deadlines
// under French weekday, holiday and working-hours rules.
//
// Every operation is a pure function of its arguments and of the holiday set
// the Calendar was built with. The current instant is always passed in by the
// caller; nothing in this package reads the wall clock.
package calendar

import "time"

const (
	// WorkdayStartHour first hour of the callback window (inclusive)
	WorkdayStartHour = 10
	// WorkdayEndHour end of the callback window
	WorkdayEndHour = 18

	// AvailabilityWorkingDays working days between today and the first bookable date
	AvailabilityWorkingDays = 2
	// CallbackWorkingHours working-hour budget for the professional's callback
	CallbackWorkingHours = 6
)

// Calendar evaluates dates against a fixed holiday set.
type Calendar struct {
	holidays HolidaySet
}

// New creates a Calendar over the given holidays.
func New(holidays HolidaySet) *Calendar {
	return &Calendar{holidays: holidays}
}

// Holidays returns the holiday set in use.
func (c *Calendar) Holidays() HolidaySet {
	return c.holidays
}

// IsHoliday reports whether d is a listed holiday.
func (c *Calendar) IsHoliday(d Date) bool {
	return c.holidays.Contains(d)
}

// IsWorkingDay reports Monday to Friday, holidays excluded.
func (c *Calendar) IsWorkingDay(d Date) bool {
	return !d.IsWeekend() && !c.holidays.Contains(d)
}

// NextWorkingDay returns the first working day strictly after d.
func (c *Calendar) NextWorkingDay(d Date) Date {
	next := d.AddDays(1)
	for !c.IsWorkingDay(next) {
		next = next.AddDays(1)
	}
	return next
}

// NextAvailability returns the earliest date a customer may book: the second
// working day strictly after now's date. If tomorrow is a working day it
// counts as the first one.
func (c *Calendar) NextAvailability(now time.Time) Date {
	candidate := DateOf(now).AddDays(1)
	counted := 0

	for {
		if c.IsWorkingDay(candidate) {
			counted++
		}
		if counted >= AvailabilityWorkingDays {
			return candidate
		}
		candidate = candidate.AddDays(1)
	}
}

// CallbackDeadline returns the moment by which a professional must have called
// the customer back: CallbackWorkingHours working hours after now, counting
// only 10:00-18:00 on working days.
//
// Arithmetic is whole hours: minutes and seconds of now are dropped when the
// starting point is normalized, so the result is always on the hour and never
// later than 18:00.
func (c *Calendar) CallbackDeadline(now time.Time) time.Time {
	loc := now.Location()
	day, hour := c.normalizeCallbackStart(now)

	budget := CallbackWorkingHours
	for {
		step := WorkdayEndHour - hour
		if step > budget {
			step = budget
		}
		hour += step
		budget -= step

		if budget == 0 {
			return day.At(hour, loc)
		}

		day = c.NextWorkingDay(day)
		hour = WorkdayStartHour
	}
}

// IsDateAvailable reports whether candidate can be booked given threshold:
// on or after the threshold, not a weekend day and not a holiday.
func (c *Calendar) IsDateAvailable(candidate, threshold Date) bool {
	return candidate.String() >= threshold.String() &&
		!candidate.IsWeekend() &&
		!c.holidays.Contains(candidate)
}

// Reason explains why a date cannot be booked. The empty Reason means it can.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonBeforeThreshold Reason = "before_threshold"
	ReasonWeekend         Reason = "weekend"
	ReasonHoliday         Reason = "holiday"
)

// Ineligibility returns the first rule candidate breaks, in the order
// threshold, weekend, holiday. It agrees with IsDateAvailable.
func (c *Calendar) Ineligibility(candidate, threshold Date) Reason {
	switch {
	case candidate.Before(threshold):
		return ReasonBeforeThreshold
	case candidate.IsWeekend():
		return ReasonWeekend
	case c.holidays.Contains(candidate):
		return ReasonHoliday
	default:
		return ReasonNone
	}
}

// normalizeCallbackStart snaps now into a working window and returns the day
// and whole hour to start counting from.
func (c *Calendar) normalizeCallbackStart(now time.Time) (Date, int) {
	day := DateOf(now)
	hour := now.Hour()

	switch {
	case hour < WorkdayStartHour:
		hour = WorkdayStartHour
	case hour >= WorkdayEndHour:
		day = day.AddDays(1)
		hour = WorkdayStartHour
	}

	if !c.IsWorkingDay(day) {
		for !c.IsWorkingDay(day) {
			day = day.AddDays(1)
		}
		hour = WorkdayStartHour
	}

	return day, hour
}
