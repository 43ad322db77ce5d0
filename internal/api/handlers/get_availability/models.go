package get_availability

import (
	"time"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
	getAvailability "github.com/m04kA/nuisibook-booking/internal/usecase/get_availability"
)

// PackResponse пакет услуг
type PackResponse struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Fallback bool   `json:"fallback"`
}

// DayResponse день сетки
type DayResponse struct {
	Date      calendar.Date `json:"date"`
	Label     string        `json:"label"`
	IsToday   bool          `json:"is_today"`
	IsPast    bool          `json:"is_past"`
	Available bool          `json:"available"`
	Reason    string        `json:"reason,omitempty"`
}

// WeekResponse неделя с понедельника по воскресенье
type WeekResponse struct {
	Start      calendar.Date  `json:"start"`
	End        calendar.Date  `json:"end"`
	MonthLabel string         `json:"month_label"`
	Previous   *calendar.Date `json:"previous,omitempty"`
	Next       *calendar.Date `json:"next,omitempty"`
	Days       []DayResponse  `json:"days"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Now                     string        `json:"now"`
	Threshold               calendar.Date `json:"threshold"`
	ThresholdDisplay        string        `json:"threshold_display"`
	CallbackDeadline        string        `json:"callback_deadline"`
	CallbackDeadlineDisplay string        `json:"callback_deadline_display"`
	Pack                    PackResponse  `json:"pack"`
	TimeSlots               []string      `json:"time_slots"`
	Week                    WeekResponse  `json:"week"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Week.Days))
	for _, d := range resp.Week.Days {
		days = append(days, DayResponse{
			Date:      d.Date,
			Label:     d.Label,
			IsToday:   d.IsToday,
			IsPast:    d.IsPast,
			Available: d.Available,
			Reason:    string(d.Reason),
		})
	}

	return &AvailabilityResponse{
		Now:                     resp.Now.Format(time.RFC3339),
		Threshold:               resp.Threshold,
		ThresholdDisplay:        resp.ThresholdDisplay,
		CallbackDeadline:        resp.CallbackDeadline.Format(time.RFC3339),
		CallbackDeadlineDisplay: resp.CallbackDeadlineDisplay,
		Pack: PackResponse{
			Slug:     resp.Pack.Slug,
			Name:     resp.Pack.Name,
			Duration: resp.Pack.Duration,
			Fallback: resp.PackFallback,
		},
		TimeSlots: resp.TimeSlots,
		Week: WeekResponse{
			Start:      resp.Week.Start,
			End:        resp.Week.End,
			MonthLabel: resp.Week.MonthLabel,
			Previous:   resp.Week.Previous,
			Next:       resp.Week.Next,
			Days:       days,
		},
	}
}
