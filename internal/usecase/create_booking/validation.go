package create_booking

import (
	"regexp"
	"strings"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
	"github.com/m04kA/nuisibook-booking/internal/domain"
	"github.com/m04kA/nuisibook-booking/pkg/ptr"
)

const (
	msgFirstNameRequired  = "Le prénom est requis"
	msgLastNameRequired   = "Le nom est requis"
	msgEmailRequired      = "L'email est requis"
	msgEmailInvalid       = "Format d'email invalide"
	msgPhoneRequired      = "Le téléphone est requis"
	msgPhoneInvalid       = "Format de téléphone invalide"
	msgAddressRequired    = "L'adresse est requise"
	msgCityRequired       = "La ville est requise"
	msgPostalCodeRequired = "Le code postal est requis"
	msgPostalCodeInvalid  = "Le code postal doit contenir 5 chiffres"
	msgDateRequired       = "La date d'intervention est requise"
	msgDateInvalid        = "Format de date invalide"
	msgTimeRequired       = "Le créneau horaire est requis"
	msgTimeInvalid        = "Créneau horaire invalide"
)

var (
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe      = regexp.MustCompile(`^[0-9\s\-\+\(\)]{8,}$`)
	postalCodeRe = regexp.MustCompile(`^[0-9]{5}$`)
	whitespaceRe = regexp.MustCompile(`\s`)
)

// validateRequest проверяет форму и возвращает нормализованные данные.
// Все ошибки собираются сразу, по одной на поле.
func validateRequest(req *Request) (*form, error) {
	errs := make(map[string]string)

	f := &form{
		firstName:  strings.TrimSpace(req.FirstName),
		lastName:   strings.TrimSpace(req.LastName),
		email:      strings.TrimSpace(req.Email),
		phone:      strings.TrimSpace(req.Phone),
		address:    strings.TrimSpace(req.Address),
		city:       strings.TrimSpace(req.City),
		postalCode: strings.TrimSpace(req.PostalCode),
		packSlug:   domain.ResolvePack(strings.TrimSpace(req.PackSlug)).Slug,
		isFlexible: req.IsFlexible,
	}

	f.company = ptr.NilIfZero(strings.TrimSpace(ptr.Value(req.Company)))

	if f.firstName == "" {
		errs["first_name"] = msgFirstNameRequired
	}
	if f.lastName == "" {
		errs["last_name"] = msgLastNameRequired
	}

	switch {
	case f.email == "":
		errs["email"] = msgEmailRequired
	case !emailRe.MatchString(f.email):
		errs["email"] = msgEmailInvalid
	}

	switch {
	case f.phone == "":
		errs["phone"] = msgPhoneRequired
	case !phoneRe.MatchString(whitespaceRe.ReplaceAllString(f.phone, "")):
		errs["phone"] = msgPhoneInvalid
	}

	if f.address == "" {
		errs["address"] = msgAddressRequired
	}
	if f.city == "" {
		errs["city"] = msgCityRequired
	}

	switch {
	case f.postalCode == "":
		errs["postal_code"] = msgPostalCodeRequired
	case !postalCodeRe.MatchString(f.postalCode):
		errs["postal_code"] = msgPostalCodeInvalid
	}

	// Дата и время обязательны, кроме режима "je ne sais pas encore"
	rawDate := trimmed(req.Date)
	switch {
	case rawDate == "" && !f.isFlexible:
		errs["appointment_date"] = msgDateRequired
	case rawDate != "":
		d, err := calendar.ParseDate(rawDate)
		if err != nil {
			errs["appointment_date"] = msgDateInvalid
		} else {
			f.date = &d
		}
	}

	rawTime := trimmed(req.Time)
	switch {
	case rawTime == "" && !f.isFlexible:
		errs["appointment_time"] = msgTimeRequired
	case rawTime != "":
		if !domain.IsValidTimeSlot(rawTime) {
			errs["appointment_time"] = msgTimeInvalid
		} else {
			f.slot = &rawTime
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	return f, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
