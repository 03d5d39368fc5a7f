package calendar

import (
	"strings"

	"github.com/harkabeeparolus/pylendar/pkg/astro"
)

// BuildAnchors constructs the anchor table for one run: the computed
// astronomical and movable-feast anchors for the year, overlaid with the
// alias declarations found in the calendar lines.
//
// An alias line contains '=' and no tab (a tab would make it an event).
// It is applied only when exactly one side already names a known anchor,
// and never redefines an existing name, so the first definition wins.
// Aliases become ordinary table entries: a later line may chain off an
// earlier alias, but a line where neither side is known is skipped.
func BuildAnchors(lines []string, year int) map[string]*Expr {
	anchors := map[string]*Expr{
		"easter":         NewAnchorSingle(astro.Easter(year)),
		"paskha":         NewAnchorSingle(astro.Paskha(year)),
		"chinesenewyear": NewAnchorSingle(astro.ChineseNewYear(year)),
	}
	for name, date := range astro.Seasons(year) {
		anchors[name] = NewAnchorSingle(date)
	}
	for name, dates := range astro.MoonPhases(year) {
		anchors[name] = NewAnchorSet(dates)
	}

	for _, line := range lines {
		if !strings.Contains(line, "=") || strings.Contains(line, "\t") {
			continue
		}
		left, right, _ := strings.Cut(line, "=")
		left = strings.ToLower(strings.TrimSpace(left))
		right = strings.ToLower(strings.TrimSpace(right))
		_, leftKnown := anchors[left]
		_, rightKnown := anchors[right]
		switch {
		case leftKnown && !rightKnown:
			anchors[right] = anchors[left]
		case rightKnown && !leftKnown:
			anchors[left] = anchors[right]
		}
	}
	return anchors
}
