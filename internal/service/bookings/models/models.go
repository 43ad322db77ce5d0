package models

import (
	"time"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
	"github.com/m04kA/nuisibook-booking/internal/domain"
)

// BookingResponse представление бронирования для API
type BookingResponse struct {
	ID        string  `json:"id"`
	Reference string  `json:"reference"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Company   *string `json:"company,omitempty"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	City      string  `json:"city"`

	PostalCode    string `json:"postal_code"`
	TreatmentType string `json:"treatment_type"`
	PackName      string `json:"pack_name"`

	AppointmentDate        *string `json:"appointment_date,omitempty"`
	AppointmentDateDisplay *string `json:"appointment_date_display,omitempty"`
	AppointmentTime        *string `json:"appointment_time,omitempty"`
	IsFlexible             bool    `json:"is_flexible"`

	CallbackDeadline        string `json:"callback_deadline"`
	CallbackDeadlineDisplay string `json:"callback_deadline_display"`

	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string
}

// FromDomainBooking конвертирует доменную модель в ответ API
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                      b.ID.String(),
		Reference:               b.Reference(),
		FirstName:               b.FirstName,
		LastName:                b.LastName,
		Company:                 b.Company,
		Email:                   b.Email,
		Phone:                   b.Phone,
		Address:                 b.Address,
		City:                    b.City,
		PostalCode:              b.PostalCode,
		TreatmentType:           b.TreatmentType,
		PackName:                domain.ResolvePack(b.TreatmentType).Name,
		AppointmentTime:         b.AppointmentTime,
		IsFlexible:              b.IsFlexible,
		CallbackDeadline:        b.CallbackDeadline.Format(time.RFC3339),
		CallbackDeadlineDisplay: calendar.FormatDeadline(b.CallbackDeadline),
		Status:                  string(b.Status),
		CreatedAt:               b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:               b.UpdatedAt.Format(time.RFC3339),
	}

	if b.AppointmentDate != nil {
		date := b.AppointmentDate.String()
		display := calendar.FormatLong(*b.AppointmentDate)
		resp.AppointmentDate = &date
		resp.AppointmentDateDisplay = &display
	}

	return resp
}

// ToDomainBookingStatus разбирает статус из строки
func ToDomainBookingStatus(s string) (domain.BookingStatus, bool) {
	status := domain.BookingStatus(s)
	return status, status.IsValid()
}
