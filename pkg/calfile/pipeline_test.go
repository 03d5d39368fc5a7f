package calfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harkabeeparolus/pylendar/pkg/calendar"
	"github.com/harkabeeparolus/pylendar/pkg/calfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs the whole pipeline the way the root command does: preprocess the
// file, build anchors, match against the window, sort.
func TestPipeline(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	extra := "feb 18\tIncluded event\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra"), []byte(extra), 0o644))

	main := `/* personal calendar */
#include <extra>
tet = chinesenewyear
ChineseNewYear	Lunar New Year [1990]
easter-46	Ash Wednesday
02/18	Fixed note
	with a second line
12/25	Christmas
`
	path := filepath.Join(dir, "calendar")
	require.NoError(t, os.WriteFile(path, []byte(main), 0o644))

	lines, err := calfile.NewProcessor(nil).ProcessFile(path)
	require.NoError(t, err)
	lines = calfile.JoinContinuations(lines)

	today := calendar.Date(2026, time.February, 17) // a Tuesday
	window := calendar.DefaultWindow()
	ahead, behind := window.AheadBehind(today, nil, 0)
	assert.Equal(1, ahead)
	datesToCheck := calendar.DatesToCheck(today, ahead, behind)

	anchors := calendar.BuildAnchors(lines, today.Year())
	require.Contains(t, anchors, "tet")

	events := calendar.MatchAll(lines, datesToCheck, calendar.NewParser(anchors))
	calendar.SortEvents(events)

	require.Len(t, events, 4)
	// Chinese new year 2026 falls on Feb 17, Ash Wednesday on Feb 18
	assert.Equal("Lunar New Year 36", events[0].Description)
	assert.True(events[0].Variable)
	assert.Equal(calendar.Date(2026, time.February, 17), events[0].Date)

	assert.Equal("Included event", events[1].Description)
	assert.Equal("Ash Wednesday", events[2].Description)
	assert.Equal(calendar.Date(2026, time.February, 18), events[2].Date)
	assert.Contains(events[3].Description, "Fixed note")
	assert.Contains(events[3].Description, "with a second line")
	assert.False(events[3].Variable)
}
