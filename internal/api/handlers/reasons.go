package handlers

import "github.com/m04kA/nuisibook-booking/internal/calendar"

// ReasonMessage текст для клиента, почему дата недоступна
func ReasonMessage(reason calendar.Reason, threshold calendar.Date) string {
	switch reason {
	case calendar.ReasonBeforeThreshold:
		return "Première date disponible : " + calendar.FormatLong(threshold)
	case calendar.ReasonWeekend:
		return "Aucune intervention le week-end"
	case calendar.ReasonHoliday:
		return "Aucune intervention les jours fériés"
	default:
		return ""
	}
}
