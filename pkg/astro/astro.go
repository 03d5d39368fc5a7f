// Package astro computes the yearly anchor dates the calendar engine
// resolves keywords like "easter" and "fullmoon" against. All results are
// civil dates at UTC midnight.
package astro

import (
	"time"

	"github.com/6tail/lunar-go/calendar"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonphase"
	"github.com/soniakeys/meeus/v3/solstice"
)

// lunations per year, used to step across a year's moon phases
const lunationsPerYear = 12.3685

func civil(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Easter returns Gregorian (Western) Easter Sunday using Oudin's computus.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Paskha returns Orthodox Easter on the Gregorian calendar. The Julian
// computus result is shifted by the 13-day Julian/Gregorian difference,
// which holds for years 1900 through 2099.
func Paskha(year int) time.Time {
	a := year % 19
	b := year % 4
	c := year % 7
	d := (19*a + 15) % 30
	e := (2*b + 4*c + 6*d + 6) % 7
	day := 22 + d + e
	month := time.March
	if day > 31 {
		day -= 31
		month = time.April
	}
	julianDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return julianDate.AddDate(0, 0, 13)
}

// ChineseNewYear returns the solar date of lunar month 1, day 1.
func ChineseNewYear(year int) time.Time {
	solar := calendar.NewLunarFromYmd(year, 1, 1).GetSolar()
	return time.Date(solar.GetYear(), time.Month(solar.GetMonth()), solar.GetDay(),
		0, 0, 0, 0, time.UTC)
}

// Seasons returns the equinox and solstice dates for a year, keyed by the
// calendar-file keywords.
func Seasons(year int) map[string]time.Time {
	return map[string]time.Time{
		"marequinox":  civil(julian.JDToTime(solstice.March(year))),
		"junsolstice": civil(julian.JDToTime(solstice.June(year))),
		"sepequinox":  civil(julian.JDToTime(solstice.September(year))),
		"decsolstice": civil(julian.JDToTime(solstice.December(year))),
	}
}

// MoonPhases returns every new-moon and full-moon date falling in the given
// year, keyed "newmoon" and "fullmoon". The phase searches are seeded one
// lunation apart across the year; duplicates from the nearest-phase search
// are collapsed and out-of-year spillover is dropped.
func MoonPhases(year int) map[string][]time.Time {
	phases := map[string]func(float64) float64{
		"newmoon":  moonphase.New,
		"fullmoon": moonphase.Full,
	}
	out := make(map[string][]time.Time, len(phases))
	for name, phase := range phases {
		seen := make(map[time.Time]struct{})
		var dates []time.Time
		for i := 0; i <= 13; i++ {
			y := float64(year) + float64(i)/lunationsPerYear
			dt := civil(julian.JDToTime(phase(y)))
			if dt.Year() != year {
				continue
			}
			if _, ok := seen[dt]; ok {
				continue
			}
			seen[dt] = struct{}{}
			dates = append(dates, dt)
		}
		out[name] = dates
	}
	return out
}
