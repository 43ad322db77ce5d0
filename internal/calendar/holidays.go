package calendar

import (
	"fmt"
	"sort"
)

// HolidaySet is an immutable set of non-working holidays indexed by year.
// A year without entries has no holidays at all: the table has to be
// extended every year, nothing is extrapolated.
type HolidaySet struct {
	dates map[string]struct{}
	years map[int]struct{}
}

// NewHolidaySet builds a set from a year -> ["YYYY-MM-DD", ...] mapping.
// Every date must parse and must belong to the year it is filed under.
func NewHolidaySet(byYear map[int][]string) (HolidaySet, error) {
	set := HolidaySet{
		dates: make(map[string]struct{}),
		years: make(map[int]struct{}),
	}

	for year, dates := range byYear {
		for _, raw := range dates {
			d, err := ParseDate(raw)
			if err != nil {
				return HolidaySet{}, err
			}
			if d.Year() != year {
				return HolidaySet{}, fmt.Errorf("calendar: holiday %s filed under year %d", raw, year)
			}
			set.dates[d.String()] = struct{}{}
		}
		set.years[year] = struct{}{}
	}

	return set, nil
}

// MustHolidaySet is NewHolidaySet for static tables.
func MustHolidaySet(byYear map[int][]string) HolidaySet {
	set, err := NewHolidaySet(byYear)
	if err != nil {
		panic(err)
	}
	return set
}

// Contains reports whether d is a listed holiday.
func (h HolidaySet) Contains(d Date) bool {
	_, ok := h.dates[d.String()]
	return ok
}

// Covers reports whether the table has an entry for year.
func (h HolidaySet) Covers(year int) bool {
	_, ok := h.years[year]
	return ok
}

// Years returns the covered years in ascending order.
func (h HolidaySet) Years() []int {
	years := make([]int, 0, len(h.years))
	for y := range h.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Len returns the number of holidays in the set.
func (h HolidaySet) Len() int {
	return len(h.dates)
}

// FrenchHolidays returns a copy of the built-in table of French public
// holidays observed as non-working days.
func FrenchHolidays() map[int][]string {
	out := make(map[int][]string, len(frenchHolidays))
	for year, dates := range frenchHolidays {
		out[year] = append([]string(nil), dates...)
	}
	return out
}

// MergeHolidays overlays extra years on top of base. A year present in
// extra replaces the same year in base.
func MergeHolidays(base, extra map[int][]string) map[int][]string {
	out := make(map[int][]string, len(base)+len(extra))
	for year, dates := range base {
		out[year] = append([]string(nil), dates...)
	}
	for year, dates := range extra {
		out[year] = append([]string(nil), dates...)
	}
	return out
}

var frenchHolidays = map[int][]string{
	2024: {
		"2024-01-01", // Nouvel An
		"2024-03-29", // Vendredi Saint
		"2024-04-01", // Lundi de Pâques
		"2024-05-01", // Fête du Travail
		"2024-05-08", // Victoire 1945
		"2024-05-09", // Ascension
		"2024-05-20", // Lundi de Pentecôte
		"2024-07-14", // Fête nationale
		"2024-08-15", // Assomption
		"2024-11-01", // Toussaint
		"2024-11-11", // Armistice
		"2024-12-25", // Noël
	},
	2025: {
		"2025-01-01", // Nouvel An
		"2025-04-18", // Vendredi Saint
		"2025-04-21", // Lundi de Pâques
		"2025-05-01", // Fête du Travail
		"2025-05-08", // Victoire 1945
		"2025-05-29", // Ascension
		"2025-06-09", // Lundi de Pentecôte
		"2025-07-14", // Fête nationale
		"2025-08-15", // Assomption
		"2025-11-01", // Toussaint
		"2025-11-11", // Armistice
		"2025-12-25", // Noël
	},
	2026: {
		"2026-01-01", // Nouvel An
		"2026-04-03", // Vendredi Saint
		"2026-04-06", // Lundi de Pâques
		"2026-05-01", // Fête du Travail
		"2026-05-08", // Victoire 1945
		"2026-05-14", // Ascension
		"2026-05-25", // Lundi de Pentecôte
		"2026-07-14", // Fête nationale
		"2026-08-15", // Assomption
		"2026-11-01", // Toussaint
		"2026-11-11", // Armistice
		"2026-12-25", // Noël
	},
}
