package check_date

import "github.com/m04kA/nuisibook-booking/internal/calendar"

// Request модель запроса проверки даты
type Request struct {
	Date calendar.Date
}

// Response результат проверки даты
type Response struct {
	Date             calendar.Date
	DateDisplay      string
	Available        bool
	Reason           calendar.Reason
	Threshold        calendar.Date
	ThresholdDisplay string
}
