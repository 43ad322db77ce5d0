package notifications

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/nuisibook-booking/internal/calendar"
	"github.com/m04kA/nuisibook-booking/internal/domain"
	"github.com/m04kA/nuisibook-booking/internal/integrations/mailer"
	"github.com/m04kA/nuisibook-booking/internal/integrations/sms"
	"github.com/m04kA/nuisibook-booking/pkg/ptr"
)

func customerEmail(b *domain.Booking, loc *time.Location) mailer.Message {
	pack := domain.ResolvePack(b.TreatmentType)
	deadline := calendar.FormatDeadline(b.CallbackDeadline.In(loc))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Bonjour %s,\n\n", b.FullName())
	fmt.Fprintf(&sb, "Nous avons bien reçu votre demande d'intervention (référence %s).\n\n", b.Reference())
	fmt.Fprintf(&sb, "Prestation : %s (%s)\n", pack.Name, pack.Duration)
	fmt.Fprintf(&sb, "Adresse : %s, %s %s\n", b.Address, b.PostalCode, b.City)
	if b.AppointmentDate != nil {
		fmt.Fprintf(&sb, "Rendez-vous souhaité : %s", calendar.FormatLong(*b.AppointmentDate))
		if slot := ptr.Value(b.AppointmentTime); slot != "" {
			fmt.Fprintf(&sb, " à %s", slot)
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("Rendez-vous : à convenir par téléphone\n")
	}
	fmt.Fprintf(&sb, "\nUn technicien vous rappellera au %s avant le %s.\n\n", b.Phone, deadline)
	sb.WriteString("Cordialement,\nL'équipe Nuisibook\n")

	return mailer.Message{
		To:      b.Email,
		ToName:  b.FullName(),
		Subject: fmt.Sprintf("Votre demande d'intervention %s", b.Reference()),
		Text:    sb.String(),
	}
}

func professionalSMS(b *domain.Booking, to string, loc *time.Location) sms.Message {
	pack := domain.ResolvePack(b.TreatmentType)

	when := "date à convenir"
	if b.AppointmentDate != nil {
		when = calendar.FormatLong(*b.AppointmentDate)
		if slot := ptr.Value(b.AppointmentTime); slot != "" {
			when += " " + slot
		}
	}

	body := fmt.Sprintf("Nouvelle demande %s : %s, %s, %s %s. %s. Rappeler au %s avant le %s.",
		b.Reference(), pack.Name, b.FullName(), b.PostalCode, b.City, when, b.Phone,
		calendar.FormatDeadline(b.CallbackDeadline.In(loc)))

	return sms.Message{To: to, Body: body}
}
