package get_availability

import (
	"github.com/m04kA/nuisibook-booking/internal/calendar"
)

// MaxWeeksAhead горизонт навигации по неделям
const MaxWeeksAhead = 52

// buildWeek строит сетку недели, содержащей weekOf
func buildWeek(cal *calendar.Calendar, weekOf, today, threshold calendar.Date) Week {
	start := weekOf.StartOfWeek()

	week := Week{
		Start:      start,
		End:        start.AddDays(6),
		MonthLabel: calendar.FormatMonth(start),
		Days:       make([]Day, 0, 7),
	}

	for i := 0; i < 7; i++ {
		d := start.AddDays(i)
		reason := cal.Ineligibility(d, threshold)
		week.Days = append(week.Days, Day{
			Date:      d,
			Label:     calendar.FormatLong(d),
			IsToday:   d.Equal(today),
			IsPast:    d.Before(today),
			Available: reason == calendar.ReasonNone,
			Reason:    reason,
		})
	}

	// Назад можно, пока предыдущая неделя не закончилась до сегодняшнего дня
	if prev := start.AddDays(-7); !prev.AddDays(6).Before(today) {
		week.Previous = &prev
	}
	if next := start.AddDays(7); withinHorizon(next, today) {
		week.Next = &next
	}

	return week
}

// withinHorizon проверяет, что неделя weekOf не дальше MaxWeeksAhead от текущей
func withinHorizon(weekOf, today calendar.Date) bool {
	limit := today.StartOfWeek().AddDays(7 * MaxWeeksAhead)
	return !weekOf.StartOfWeek().After(limit)
}
