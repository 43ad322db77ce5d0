package create_booking

import (
	"time"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
	"github.com/m04kA/nuisibook-booking/internal/domain"
)

// Request модель запроса на создание бронирования (данные формы как есть)
type Request struct {
	FirstName  string
	LastName   string
	Company    *string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string

	PackSlug   string
	IsFlexible bool    // "je ne sais pas encore": дата и время необязательны
	Date       *string // "YYYY-MM-DD"
	Time       *string // один из domain.TimeSlots
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking   *domain.Booking
	Reference string // первые 8 символов ID
	Pack      domain.Pack

	AppointmentDisplay      string // "mardi 13 mai 2025" или пусто
	CallbackDeadlineDisplay string // "vendredi 9 mai 2025 à 17:00"
	Threshold               calendar.Date
}

// form нормализованные и разобранные данные формы
type form struct {
	firstName  string
	lastName   string
	company    *string
	email      string
	phone      string
	address    string
	city       string
	postalCode string
	packSlug   string
	isFlexible bool
	date       *calendar.Date
	slot       *string
}

func (f *form) mode() string {
	if f.isFlexible {
		return domain.ModeFlexible
	}
	return domain.ModeScheduled
}

func (f *form) toBooking(now time.Time) *domain.Booking {
	return &domain.Booking{
		FirstName:       f.firstName,
		LastName:        f.lastName,
		Company:         f.company,
		Email:           f.email,
		Phone:           f.phone,
		Address:         f.address,
		City:            f.city,
		PostalCode:      f.postalCode,
		TreatmentType:   f.packSlug,
		AppointmentDate: f.date,
		AppointmentTime: f.slot,
		IsFlexible:      f.isFlexible,
		Status:          domain.StatusPending,
		CreatedAt:       now,
	}
}
