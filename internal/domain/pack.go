package domain

// Pack is a treatment offer selected by the slug in the booking link.
type Pack struct {
	Slug     string
	Name     string
	Duration string
}

// DefaultPackSlug pack used when the slug is missing or unknown
const DefaultPackSlug = "rongeur"

// Packs catalogue of treatments, in display order
var Packs = []Pack{
	{Slug: "rongeur", Name: "Pack traitement rongeur", Duration: "3h"},
	{Slug: "blattes-cafards", Name: "Pack traitement cafards", Duration: "3h"},
	{Slug: "punaises-de-lit", Name: "Pack traitement punaises de lit", Duration: "4h"},
	{Slug: "guepes-frelons", Name: "Pack traitement nid de guêpes", Duration: "2h"},
}

// TimeSlots intervention start times offered in the form
var TimeSlots = []string{"08h00", "10h00", "13h00", "15h00", "17h00"}

// FindPack looks a pack up by slug.
func FindPack(slug string) (Pack, bool) {
	for _, p := range Packs {
		if p.Slug == slug {
			return p, true
		}
	}
	return Pack{}, false
}

// ResolvePack returns the pack for slug, falling back to DefaultPackSlug.
func ResolvePack(slug string) Pack {
	if p, ok := FindPack(slug); ok {
		return p
	}
	p, _ := FindPack(DefaultPackSlug)
	return p
}

// IsValidTimeSlot reports whether slot is one of TimeSlots.
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
