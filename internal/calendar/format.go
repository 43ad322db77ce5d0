package calendar

import (
	"fmt"
	"time"
)

var frenchWeekdays = [...]string{
	time.Sunday:    "dimanche",
	time.Monday:    "lundi",
	time.Tuesday:   "mardi",
	time.Wednesday: "mercredi",
	time.Thursday:  "jeudi",
	time.Friday:    "vendredi",
	time.Saturday:  "samedi",
}

var frenchMonths = [...]string{
	time.January:   "janvier",
	time.February:  "février",
	time.March:     "mars",
	time.April:     "avril",
	time.May:       "mai",
	time.June:      "juin",
	time.July:      "juillet",
	time.August:    "août",
	time.September: "septembre",
	time.October:   "octobre",
	time.November:  "novembre",
	time.December:  "décembre",
}

// FormatLong renders d as "lundi 14 avril 2025".
func FormatLong(d Date) string {
	return fmt.Sprintf("%s %d %s %d", frenchWeekdays[d.Weekday()], d.Day(), frenchMonths[d.Month()], d.Year())
}

// FormatDeadline renders t as "jeudi 8 mai 2025 à 13:00" using t's own location.
func FormatDeadline(t time.Time) string {
	return fmt.Sprintf("%s à %s", FormatLong(DateOf(t)), t.Format("15:04"))
}

// FormatMonth renders the month header of a week grid, e.g. "avril 2025".
func FormatMonth(d Date) string {
	return fmt.Sprintf("%s %d", frenchMonths[d.Month()], d.Year())
}
