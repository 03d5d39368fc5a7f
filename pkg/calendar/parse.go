package calendar

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Fixed English name tables. The BSD utility derives these from the locale;
// keeping them static makes parsing deterministic across environments.
var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

var ordinalMap = map[string]int{
	"first":  1,
	"second": 2,
	"third":  3,
	"fourth": 4,
	"fifth":  5,
	"last":   -1,
}

const ordinalsRe = "first|second|third|fourth|fifth|last"

var (
	reAnchorOffset  = regexp.MustCompile(`^([a-z]+)([+-])(\d+)$`)
	reFullDate      = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)
	reMMWkdayOffset = regexp.MustCompile(`^(\d{1,2})/([a-z]+)([+-])(\d+)$`)
	reMMWkdayOrd    = regexp.MustCompile(`^(\d{1,2})/([a-z]+)(` + ordinalsRe + `)([+-]\d+)?$`)
	reMonthWkdayOrd = regexp.MustCompile(`^([a-z]+)/([a-z]+)(` + ordinalsRe + `)([+-]\d+)?$`)
	reMonthSlashDD  = regexp.MustCompile(`^([a-z]+)/(\d{1,2})$`)
	reMMDD          = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})$`)
	reMonthWkdayOff = regexp.MustCompile(`^([a-z]+)\s+([a-z]+)([+-])(\d+)$`)
	reMonthDD       = regexp.MustCompile(`^([a-z]{3,24})\s+(\d{1,2})$`)
	reWildcardWkday = regexp.MustCompile(`^\*\s+([a-z]+)([+-])(\d+)$`)
	reWildcardDay   = regexp.MustCompile(`^\*\s+(\d{1,2})$`)
	reWkdayOrdMonth = regexp.MustCompile(`^([a-z]+)(` + ordinalsRe + `)\s+([a-z]+)$`)
	reDDMonth       = regexp.MustCompile(`^(\d{1,2})\s+([a-z]+)$`)
)

// Parser turns calendar date fields into expressions. It closes over the
// run's anchor table so keywords like "easter" and user aliases parse
// directly to their pre-resolved expressions.
type Parser struct {
	anchors map[string]*Expr
}

func NewParser(anchors map[string]*Expr) *Parser {
	if anchors == nil {
		anchors = make(map[string]*Expr)
	}
	return &Parser{anchors: anchors}
}

// Parse converts a date field into an expression, or nil when no notation
// matches. Matching runs through an ordered cascade; order matters because
// some notations are syntactic subsets of others (an offset-suffixed anchor
// must be tried before the plain anchor lookup, MM/DD last among the slash
// forms).
func (p *Parser) Parse(field string) *Expr {
	field = strings.ToLower(strings.TrimSpace(field))

	// anchor keyword with day offset, e.g. easter-2, fullmoon+1
	if m := reAnchorOffset.FindStringSubmatch(field); m != nil {
		if base, ok := p.anchors[m[1]]; ok {
			offset, _ := strconv.Atoi(m[3])
			if m[2] == "-" {
				offset = -offset
			}
			return NewOffset(base, offset)
		}
	}

	// plain anchor keyword or user alias
	if expr, ok := p.anchors[field]; ok {
		return expr
	}

	// bare weekday: every occurrence in the year
	if wd, ok := weekdayNames[field]; ok {
		return NewEveryWeekday(wd)
	}

	// bare month name: the 1st of that month
	if month, ok := monthNames[field]; ok {
		return NewFixedMonthDay(month, 1)
	}

	return p.parseFormatPatterns(field)
}

func (p *Parser) parseFormatPatterns(field string) *Expr {
	if strings.Contains(field, "/") || (field != "" && isDigit(field[0]) && strings.Contains(field, "-")) {
		if expr := parseFullDate(field); expr != nil {
			return expr
		}
		if expr := parseMMWkdayOffset(field); expr != nil {
			return expr
		}
		if expr := parseOrdinalWeekday(field); expr != nil {
			return expr
		}
		if expr := parseMonthSlashDD(field); expr != nil {
			return expr
		}
		return parseMMDD(field)
	}

	// non-slash patterns, most specific first
	if expr := parseMonthWkdayOffset(field); expr != nil {
		return expr
	}
	if expr := parseMonthDD(field); expr != nil {
		return expr
	}
	if expr := parseWildcardWkday(field); expr != nil {
		return expr
	}
	if expr := parseWildcardDay(field); expr != nil {
		return expr
	}
	if expr := parseWkdayOrdMonth(field); expr != nil {
		return expr
	}
	return parseDDMonth(field)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func signed(sign, digits string) int {
	n := atoi(digits)
	if sign == "-" {
		return -n
	}
	return n
}

// YYYY/M/D or YYYY-MM-DD
func parseFullDate(field string) *Expr {
	m := reFullDate.FindStringSubmatch(field)
	if m == nil {
		return nil
	}
	return NewFullDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]))
}

// MM/Weekday+N or MM/Weekday-N, e.g. 03/sun-1
func parseMMWkdayOffset(field string) *Expr {
	m := reMMWkdayOffset.FindStringSubmatch(field)
	if m == nil {
		return nil
	}
	wd, ok := weekdayNames[m[2]]
	if !ok {
		return nil
	}
	return NewNthWeekdayOfMonth(time.Month(atoi(m[1])), wd, signed(m[3], m[4]))
}

// MM/WkdayOrdinal or MonthName/WkdayOrdinal with optional trailing day
// offset, e.g. 10/monsecond, oct/satfourth-2
func parseOrdinalWeekday(field string) *Expr {
	var month time.Month
	var wkdayName, ordinal, offset string
	if m := reMMWkdayOrd.FindStringSubmatch(field); m != nil {
		month = time.Month(atoi(m[1]))
		wkdayName, ordinal, offset = m[2], m[3], m[4]
	} else if m := reMonthWkdayOrd.FindStringSubmatch(field); m != nil {
		var ok bool
		month, ok = monthNames[m[1]]
		if !ok {
			return nil
		}
		wkdayName, ordinal, offset = m[2], m[3], m[4]
	} else {
		return nil
	}

	wd, ok := weekdayNames[wkdayName]
	if !ok {
		return nil
	}
	expr := NewNthWeekdayOfMonth(month, wd, ordinalMap[ordinal])
	if offset != "" {
		expr = NewOffset(expr, atoi(offset))
	}
	return expr
}

// MonthName/DD, e.g. apr/01
func parseMonthSlashDD(field string) *Expr {
	m := reMonthSlashDD.FindStringSubmatch(field)
	if m == nil {
		return nil
	}
	month, ok := monthNames[m[1]]
	if !ok {
		return nil
	}
	return NewFixedMonthDay(month, atoi(m[2]))
}

// MM/DD
func parseMMDD(field string) *Expr {
	m := reMMDD.FindStringSubmatch(field)
	if m == nil {
		return nil
	}
	return NewFixedMonthDay(time.Month(atoi(m[1])), atoi(m[2]))
}

// MonthName Weekday+N, e.g. may sun+2
func parseMonthWkdayOffset(field string) *Expr {
	m := reMonthWkdayOff.FindStringSubmatch(field)
	if m == nil {
		return nil
	}
	month, ok := monthNames[m[1]]
	if !ok {
		return nil
	}
	wd, ok := weekdayNames[m[2]]
	if !ok {
		return nil
	}
	return NewNthWeekdayOfMonth(month, wd, signed(m[3], m[4]))
}

// MonthName DD, e.g. july 9
func parseMonthDD(field string) *Expr {
	m := reMonthDD.FindStringSubmatch(field)
	if m == nil {
		return nil
	}
	month, ok := monthNames[m[1]]
	if !ok {
		return nil
	}
	return NewFixedMonthDay(month, atoi(m[2]))
}

// * Weekday+N, e.g. * fri+3
func parseWildcardWkday(field string) *Expr {
	m := reWildcardWkday.FindStringSubmatch(field)
	if m == nil {
		return nil
	}
	wd, ok := weekdayNames[m[1]]
	if !ok {
		return nil
	}
	return NewNthWeekdayEveryMonth(wd, signed(m[2], m[3]))
}

// * DD, e.g. * 15
func parseWildcardDay(field string) *Expr {
	m := reWildcardDay.FindStringSubmatch(field)
	if m == nil {
		return nil
	}
	return NewWildcardDay(atoi(m[1]))
}

// WkdayOrdinal MonthName, e.g. sunfirst aug
func parseWkdayOrdMonth(field string) *Expr {
	m := reWkdayOrdMonth.FindStringSubmatch(field)
	if m == nil {
		return nil
	}
	wd, ok := weekdayNames[m[1]]
	if !ok {
		return nil
	}
	month, ok := monthNames[m[3]]
	if !ok {
		return nil
	}
	return NewNthWeekdayOfMonth(month, wd, ordinalMap[m[2]])
}

// DD MonthName, e.g. 01 jan
func parseDDMonth(field string) *Expr {
	m := reDDMonth.FindStringSubmatch(field)
	if m == nil {
		return nil
	}
	month, ok := monthNames[m[2]]
	if !ok {
		return nil
	}
	return NewFixedMonthDay(month, atoi(m[1]))
}
