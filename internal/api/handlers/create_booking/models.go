package create_booking

import (
	"github.com/m04kA/nuisibook-booking/internal/calendar"
	"github.com/m04kA/nuisibook-booking/internal/service/bookings/models"
	createBooking "github.com/m04kA/nuisibook-booking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Company    *string `json:"company,omitempty"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	PostalCode string  `json:"postal_code"`

	TreatmentType   string  `json:"treatment_type"` // slug пакета
	IsFlexible      bool    `json:"is_flexible"`
	AppointmentDate *string `json:"appointment_date,omitempty"` // "2025-05-13"
	AppointmentTime *string `json:"appointment_time,omitempty"` // "10h00"
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking          *models.BookingResponse `json:"booking"`
	Reference        string                  `json:"reference"`
	Message          string                  `json:"message"`
	Threshold        calendar.Date           `json:"threshold"`
	ThresholdDisplay string                  `json:"threshold_display"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Company:    r.Company,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
		PackSlug:   r.TreatmentType,
		IsFlexible: r.IsFlexible,
		Date:       r.AppointmentDate,
		Time:       r.AppointmentTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:          models.FromDomainBooking(resp.Booking),
		Reference:        resp.Reference,
		Message:          "Votre demande a bien été enregistrée. Nous vous rappellerons avant le " + resp.CallbackDeadlineDisplay + ".",
		Threshold:        resp.Threshold,
		ThresholdDisplay: calendar.FormatLong(resp.Threshold),
	}
}
