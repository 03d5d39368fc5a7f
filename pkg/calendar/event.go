package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Event is one matched calendar line: the in-window date it fell on, its
// description, and whether the date is marked variable for display.
type Event struct {
	Date        time.Time
	Description string
	Variable    bool
}

func NewEvent(date time.Time, description string, variable bool) *Event {
	return &Event{
		Date:        civil(date),
		Description: strings.TrimSpace(description),
		Variable:    variable,
	}
}

// SortEvents orders events by date. The sort is stable so lines sharing a
// date keep their input order.
func SortEvents(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}

func (e *Event) String() string {
	star := ""
	if e.Variable {
		star = "*"
	}
	return fmt.Sprintf("%s %2d%s\t%s", e.Date.Format("Jan"), e.Date.Day(), star, e.Description)
}

// Format renders the event for output, optionally prefixed with the
// abbreviated weekday name.
func (e *Event) Format(weekday bool) string {
	if weekday {
		return fmt.Sprintf("%s %s", e.Date.Format("Mon"), e)
	}
	return e.String()
}
