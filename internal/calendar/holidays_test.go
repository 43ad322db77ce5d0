package calendar

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHolidaySet(t *testing.T) {
	set, err := NewHolidaySet(map[int][]string{
		2025: {"2025-05-08", "2025-05-29"},
		2027: {},
	})
	require.NoError(t, err)

	assert.True(t, set.Contains(NewDate(2025, time.May, 8)))
	assert.False(t, set.Contains(NewDate(2025, time.May, 9)))
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []int{2025, 2027}, set.Years())
	assert.True(t, set.Covers(2027))
	assert.False(t, set.Covers(2026))
}

func TestNewHolidaySet_Rejects(t *testing.T) {
	_, err := NewHolidaySet(map[int][]string{2025: {"2025-13-01"}})
	assert.Error(t, err)

	_, err = NewHolidaySet(map[int][]string{2025: {"2026-01-01"}})
	assert.Error(t, err)

	assert.Panics(t, func() { MustHolidaySet(map[int][]string{2025: {"nope"}}) })
}

func TestFrenchHolidays(t *testing.T) {
	set := MustHolidaySet(FrenchHolidays())

	for _, year := range []int{2024, 2025, 2026} {
		assert.True(t, set.Covers(year))
	}
	assert.True(t, set.Contains(NewDate(2025, time.April, 21)))
	assert.True(t, set.Contains(NewDate(2026, time.May, 25)))
	assert.Equal(t, 36, set.Len())
}

func TestFrenchHolidays_ReturnsCopy(t *testing.T) {
	table := FrenchHolidays()
	table[2025][0] = "2025-01-02"

	assert.Equal(t, "2025-01-01", FrenchHolidays()[2025][0])
}

func TestMergeHolidays(t *testing.T) {
	merged := MergeHolidays(
		map[int][]string{2025: {"2025-01-01"}, 2026: {"2026-01-01"}},
		map[int][]string{2026: {"2026-12-25"}, 2027: {"2027-01-01"}},
	)

	assert.Equal(t, []string{"2025-01-01"}, merged[2025])
	assert.Equal(t, []string{"2026-12-25"}, merged[2026])
	assert.Equal(t, []string{"2027-01-01"}, merged[2027])
}

func TestFrenchHolidays_SameLayoutEveryYear(t *testing.T) {
	fixed := map[int]string{
		0:  "01-01", // Nouvel An
		3:  "05-01", // Fête du Travail
		4:  "05-08", // Victoire 1945
		7:  "07-14", // Fête nationale
		8:  "08-15", // Assomption
		9:  "11-01", // Toussaint
		10: "11-11", // Armistice
		11: "12-25", // Noël
	}

	for year, dates := range FrenchHolidays() {
		t.Run(strconv.Itoa(year), func(t *testing.T) {
			require.Len(t, dates, 12)

			for i, monthDay := range fixed {
				assert.Equal(t, fmt.Sprintf("%d-%s", year, monthDay), dates[i], "index %d", i)
			}

			parsed := make([]Date, len(dates))
			for i, raw := range dates {
				d, err := ParseDate(raw)
				require.NoError(t, err)
				parsed[i] = d
			}

			easterMonday := parsed[2]
			assert.Equal(t, time.Monday, easterMonday.Weekday())
			assert.Equal(t, easterMonday.AddDays(-3), parsed[1], "Vendredi Saint")
			assert.Equal(t, easterMonday.AddDays(38), parsed[5], "Ascension")
			assert.Equal(t, easterMonday.AddDays(49), parsed[6], "Lundi de Pentecôte")
		})
	}
}
