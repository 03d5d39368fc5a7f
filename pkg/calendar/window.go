package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/harkabeeparolus/pylendar/pkg/terrors"
)

// Window holds the schedule policy knobs: which weekday triggers the
// extended weekend look-ahead and the default day counts.
type Window struct {
	Friday       time.Weekday
	DefaultAhead int
	FridayAhead  int
}

// DefaultWindow mirrors the classic calendar(1) behavior: look one day
// ahead, or through Monday when today is a Friday.
func DefaultWindow() Window {
	return Window{Friday: time.Friday, DefaultAhead: 1, FridayAhead: 3}
}

// AheadBehind decides the look-ahead and look-behind day counts. A non-nil
// ahead always wins; otherwise the weekend expansion applies when today
// falls on the configured trigger weekday.
func (w Window) AheadBehind(today time.Time, ahead *int, behind int) (int, int) {
	if ahead != nil {
		return *ahead, behind
	}
	if today.Weekday() == w.Friday {
		return w.FridayAhead, behind
	}
	return w.DefaultAhead, behind
}

// DatesToCheck returns every date from today-behind through today+ahead
// inclusive.
func DatesToCheck(today time.Time, ahead, behind int) DateSet {
	today = civil(today)
	dates := make(DateSet)
	for offset := -behind; offset <= ahead; offset++ {
		dates.Add(today.AddDate(0, 0, offset))
	}
	return dates
}

// BSDWeekday converts the BSD day number (0=Sun .. 6=Sat) used by the -F
// flag. time.Weekday uses the same numbering, so this is a checked cast.
func BSDWeekday(bsd int) (time.Weekday, error) {
	if bsd < 0 || bsd > 6 {
		return 0, fmt.Errorf("%w: weekday must be between '0' (Sunday) and '6' (Saturday) and not '%d'", terrors.ErrValue, bsd)
	}
	return time.Weekday(bsd), nil
}

var (
	reTodayDD       = regexp.MustCompile(`^\d{2}$`)
	reTodayMMDD     = regexp.MustCompile(`^\d{4}$`)
	reTodayYYMMDD   = regexp.MustCompile(`^\d{6}$`)
	reTodayCCYYMMDD = regexp.MustCompile(`^\d{8}$`)
	reTodayNum      = regexp.MustCompile(`^\d+$`)
)

// ParseToday parses the -t override. It accepts the positional forms dd,
// mmdd, yymmdd and ccyymmdd, plus the dot-separated dd.mm[.year] form
// used on FreeBSD and macOS. Omitted leading parts come from now. A
// two-digit year between 69 and 99 lands in the 1900s, anything else in
// the 2000s.
func ParseToday(arg string, now time.Time) (time.Time, error) {
	arg = strings.TrimSpace(arg)
	if strings.Contains(arg, ".") {
		return parseDotToday(arg, now)
	}
	var year, day int
	month := now.Month()
	switch {
	case reTodayDD.MatchString(arg):
		year, day = now.Year(), atoi(arg)
	case reTodayMMDD.MatchString(arg):
		year, month, day = now.Year(), time.Month(atoi(arg[:2])), atoi(arg[2:])
	case reTodayYYMMDD.MatchString(arg):
		yy := atoi(arg[:2])
		cc := 20
		if yy >= 69 && yy <= 99 {
			cc = 19
		}
		year, month, day = cc*100+yy, time.Month(atoi(arg[2:4])), atoi(arg[4:])
	case reTodayCCYYMMDD.MatchString(arg):
		year, month, day = atoi(arg[:4]), time.Month(atoi(arg[4:6])), atoi(arg[6:])
	default:
		return time.Time{}, fmt.Errorf("%w: %w: invalid today value: '%s'", terrors.ErrArg, terrors.ErrParse, arg)
	}
	d, ok := validDate(year, month, day)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %w: no such date: '%s'", terrors.ErrArg, terrors.ErrValue, arg)
	}
	return d, nil
}

// parseDotToday handles the dd.mm[.year] form. The parts may be a single
// digit and the year is taken literally: 1.1.99 means the year 99, with
// no century pivot.
func parseDotToday(arg string, now time.Time) (time.Time, error) {
	parts := strings.Split(arg, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %w: invalid today value: '%s'", terrors.ErrArg, terrors.ErrParse, arg)
	}
	for _, part := range parts {
		if !reTodayNum.MatchString(part) {
			return time.Time{}, fmt.Errorf("%w: %w: non-numeric today value: '%s'", terrors.ErrArg, terrors.ErrParse, arg)
		}
	}
	year := now.Year()
	if len(parts) == 3 {
		year = atoi(parts[2])
	}
	d, ok := validDate(year, time.Month(atoi(parts[1])), atoi(parts[0]))
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %w: no such date: '%s'", terrors.ErrArg, terrors.ErrValue, arg)
	}
	return d, nil
}
