package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestEaster(t *testing.T) {
	assert := assert.New(t)
	for year, expected := range map[int]time.Time{
		2024: date(2024, time.March, 31),
		2025: date(2025, time.April, 20),
		2026: date(2026, time.April, 5),
		2038: date(2038, time.April, 25),
	} {
		assert.Equal(expected, Easter(year), "year %d", year)
	}
}

func TestPaskha(t *testing.T) {
	assert := assert.New(t)
	for year, expected := range map[int]time.Time{
		2024: date(2024, time.May, 5),
		2025: date(2025, time.April, 20), // coincides with Western Easter
		2026: date(2026, time.April, 12),
	} {
		assert.Equal(expected, Paskha(year), "year %d", year)
	}
}

func TestChineseNewYear(t *testing.T) {
	assert := assert.New(t)
	for year, expected := range map[int]time.Time{
		2024: date(2024, time.February, 10),
		2025: date(2025, time.January, 29),
		2026: date(2026, time.February, 17),
	} {
		assert.Equal(expected, ChineseNewYear(year), "year %d", year)
	}
}

func TestSeasons(t *testing.T) {
	assert := assert.New(t)
	seasons := Seasons(2024)
	require.Len(t, seasons, 4)
	assert.Equal(date(2024, time.March, 20), seasons["marequinox"])
	assert.Equal(date(2024, time.June, 20), seasons["junsolstice"])
	assert.Equal(date(2024, time.September, 22), seasons["sepequinox"])
	assert.Equal(date(2024, time.December, 21), seasons["decsolstice"])
}

func TestMoonPhases(t *testing.T) {
	assert := assert.New(t)
	phases := MoonPhases(2024)
	require.Contains(t, phases, "newmoon")
	require.Contains(t, phases, "fullmoon")

	for name, dates := range phases {
		// a year holds 12 or 13 of each phase
		assert.GreaterOrEqual(len(dates), 12, name)
		assert.LessOrEqual(len(dates), 13, name)
		for _, d := range dates {
			assert.Equal(2024, d.Year(), name)
		}
	}
	assert.Contains(phases["newmoon"], date(2024, time.January, 11))
	assert.Contains(phases["fullmoon"], date(2024, time.January, 25))
}
