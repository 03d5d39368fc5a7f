package calendar

import (
	"time"

	"github.com/teambition/rrule-go"
)

// DateSet is a set of civil dates at UTC midnight.
type DateSet map[time.Time]struct{}

func (s DateSet) Add(dates ...time.Time) {
	for _, d := range dates {
		s[d] = struct{}{}
	}
}

func (s DateSet) Has(d time.Time) bool {
	_, ok := s[d]
	return ok
}

// Intersect returns the dates present in both sets.
func (s DateSet) Intersect(other DateSet) DateSet {
	out := make(DateSet)
	for d := range s {
		if other.Has(d) {
			out.Add(d)
		}
	}
	return out
}

// Min returns the earliest date in the set; ok is false on an empty set.
func (s DateSet) Min() (time.Time, bool) {
	var min time.Time
	var found bool
	for d := range s {
		if !found || d.Before(min) {
			min = d
			found = true
		}
	}
	return min, found
}

// Years returns the distinct calendar years covered by the set.
func (s DateSet) Years() []int {
	seen := make(map[int]struct{})
	var years []int
	for d := range s {
		if _, ok := seen[d.Year()]; !ok {
			seen[d.Year()] = struct{}{}
			years = append(years, d.Year())
		}
	}
	return years
}

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func civil(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return Date(y, m, d)
}

type ExprKind int

const (
	KindFixedMonthDay ExprKind = iota
	KindFullDate
	KindWildcardDay
	KindAnchorSingle
	KindAnchorSet
	KindNthWeekdayOfMonth
	KindNthWeekdayEveryMonth
	KindEveryWeekday
	KindOffset
)

// Expr is a date expression: a closed set of notations that each resolve to
// a set of concrete dates for a given year. Which fields are meaningful
// depends on Kind.
type Expr struct {
	Kind    ExprKind
	Month   time.Month
	Day     int
	Year    int          // KindFullDate only
	Weekday time.Weekday // weekday-based kinds
	N       int          // ordinal; negative counts from month end
	Dates   []time.Time  // pre-resolved anchor dates
	Base    *Expr        // KindOffset only
	Days    int          // KindOffset day shift
}

func NewFixedMonthDay(month time.Month, day int) *Expr {
	return &Expr{Kind: KindFixedMonthDay, Month: month, Day: day}
}

func NewFullDate(year int, month time.Month, day int) *Expr {
	return &Expr{Kind: KindFullDate, Year: year, Month: month, Day: day}
}

func NewWildcardDay(day int) *Expr {
	return &Expr{Kind: KindWildcardDay, Day: day}
}

func NewAnchorSingle(date time.Time) *Expr {
	return &Expr{Kind: KindAnchorSingle, Dates: []time.Time{civil(date)}}
}

func NewAnchorSet(dates []time.Time) *Expr {
	civils := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		civils = append(civils, civil(d))
	}
	return &Expr{Kind: KindAnchorSet, Dates: civils}
}

func NewNthWeekdayOfMonth(month time.Month, weekday time.Weekday, n int) *Expr {
	return &Expr{Kind: KindNthWeekdayOfMonth, Month: month, Weekday: weekday, N: n}
}

func NewNthWeekdayEveryMonth(weekday time.Weekday, n int) *Expr {
	return &Expr{Kind: KindNthWeekdayEveryMonth, Weekday: weekday, N: n}
}

func NewEveryWeekday(weekday time.Weekday) *Expr {
	return &Expr{Kind: KindEveryWeekday, Weekday: weekday}
}

func NewOffset(base *Expr, days int) *Expr {
	return &Expr{Kind: KindOffset, Base: base, Days: days}
}

// Variable reports whether the expression's civil position shifts from year
// to year. The BSD calendar output marks such dates with an asterisk.
func (e *Expr) Variable() bool {
	switch e.Kind {
	case KindFixedMonthDay, KindFullDate, KindWildcardDay:
		return false
	case KindOffset:
		return e.Base.Variable()
	default:
		return true
	}
}

// indexed by time.Weekday (Sunday = 0)
var rruleWeekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// Resolve returns the set of dates the expression denotes in the given
// year. Occurrences that do not exist (the 5th Monday of a month, day 31 of
// a short month, an invalid day) resolve to nothing rather than an error.
// Pre-resolved anchor kinds ignore the year: they are already bound to the
// run's anchor table.
func (e *Expr) Resolve(year int) DateSet {
	dates := make(DateSet)
	switch e.Kind {
	case KindFixedMonthDay:
		if d, ok := validDate(year, e.Month, e.Day); ok {
			dates.Add(d)
		}
	case KindFullDate:
		if d, ok := validDate(e.Year, e.Month, e.Day); ok {
			dates.Add(d)
		}
	case KindWildcardDay:
		if e.Day >= 1 && e.Day <= 31 {
			dates = resolveRule(year, rrule.ROption{
				Freq:       rrule.MONTHLY,
				Bymonthday: []int{e.Day},
			})
		}
	case KindAnchorSingle, KindAnchorSet:
		dates.Add(e.Dates...)
	case KindNthWeekdayOfMonth:
		if e.N != 0 {
			dates = resolveRule(year, rrule.ROption{
				Freq:      rrule.YEARLY,
				Bymonth:   []int{int(e.Month)},
				Byweekday: []rrule.Weekday{rruleWeekdays[e.Weekday].Nth(e.N)},
			})
		}
	case KindNthWeekdayEveryMonth:
		if e.N != 0 {
			dates = resolveRule(year, rrule.ROption{
				Freq:      rrule.MONTHLY,
				Byweekday: []rrule.Weekday{rruleWeekdays[e.Weekday].Nth(e.N)},
			})
		}
	case KindEveryWeekday:
		dates = resolveRule(year, rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rruleWeekdays[e.Weekday]},
		})
	case KindOffset:
		for d := range e.Base.Resolve(year) {
			dates.Add(d.AddDate(0, 0, e.Days))
		}
	}
	return dates
}

// validDate reports whether the month/day exists in the year. time.Date
// normalizes out-of-range values, so a round-trip mismatch means the civil
// date does not exist.
func validDate(year int, month time.Month, day int) (time.Time, bool) {
	d := Date(year, month, day)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// resolveRule expands a recurrence rule across one calendar year.
func resolveRule(year int, opt rrule.ROption) DateSet {
	opt.Dtstart = Date(year, time.January, 1)
	dates := make(DateSet)
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return dates
	}
	for _, t := range r.Between(Date(year, time.January, 1), Date(year, time.December, 31), true) {
		dates.Add(civil(t))
	}
	return dates
}
