package calendar

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var reAgePlaceholder = regexp.MustCompile(`\[(\d{4})\]`)

// ReplaceAge substitutes a [YYYY] placeholder in a description with the
// year difference to the matched date (an age or anniversary count). Every
// occurrence of the first placeholder's literal text is replaced.
func ReplaceAge(description string, matched time.Time) string {
	m := reAgePlaceholder.FindStringSubmatch(description)
	if m == nil {
		return description
	}
	age := matched.Year() - atoi(m[1])
	return strings.ReplaceAll(description, m[0], strconv.Itoa(age))
}

// Match decides whether a calendar line's event falls on one of the dates
// to check. The line must carry a tab between the date field and the
// description; a trailing '*' on the date field forces the variable flag.
// Unparseable date fields are silently skipped: a large aggregated calendar
// file must not abort on one bad line.
//
// The expression is resolved for every year the window touches so that
// offsets spilling across a year boundary still match. When several
// resolved dates land in the window only the earliest is reported, once.
func Match(line string, datesToCheck DateSet, parser *Parser) *Event {
	if strings.TrimSpace(line) == "" || !strings.Contains(line, "\t") {
		return nil
	}

	dateStr, description, _ := strings.Cut(line, "\t")
	trimmed := strings.TrimRight(dateStr, " \t")
	explicitVariable := strings.HasSuffix(trimmed, "*")
	if explicitVariable {
		dateStr = strings.TrimSuffix(trimmed, "*")
	}
	expr := parser.Parse(dateStr)
	if expr == nil {
		return nil
	}

	resolved := make(DateSet)
	for _, year := range datesToCheck.Years() {
		for d := range expr.Resolve(year) {
			resolved.Add(d)
		}
	}
	matching := resolved.Intersect(datesToCheck)
	checkDate, ok := matching.Min()
	if !ok {
		return nil
	}
	description = ReplaceAge(description, checkDate)
	return NewEvent(checkDate, description, explicitVariable || expr.Variable())
}

// MatchAll runs Match over every line and collects the hits in input order.
func MatchAll(lines []string, datesToCheck DateSet, parser *Parser) []*Event {
	var events []*Event
	for _, line := range lines {
		if event := Match(line, datesToCheck, parser); event != nil {
			events = append(events, event)
		}
	}
	return events
}
