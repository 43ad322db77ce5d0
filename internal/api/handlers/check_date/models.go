package check_date

import (
	"github.com/m04kA/nuisibook-booking/internal/api/handlers"
	"github.com/m04kA/nuisibook-booking/internal/calendar"
	checkDate "github.com/m04kA/nuisibook-booking/internal/usecase/check_date"
)

// CheckDateResponse HTTP response model
type CheckDateResponse struct {
	Date             calendar.Date `json:"date"`
	DateDisplay      string        `json:"date_display"`
	Available        bool          `json:"available"`
	Reason           string        `json:"reason"`
	Message          string        `json:"message,omitempty"`
	Threshold        calendar.Date `json:"threshold"`
	ThresholdDisplay string        `json:"threshold_display"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkDate.Response) *CheckDateResponse {
	return &CheckDateResponse{
		Date:             resp.Date,
		DateDisplay:      resp.DateDisplay,
		Available:        resp.Available,
		Reason:           string(resp.Reason),
		Message:          handlers.ReasonMessage(resp.Reason, resp.Threshold),
		Threshold:        resp.Threshold,
		ThresholdDisplay: resp.ThresholdDisplay,
	}
}
