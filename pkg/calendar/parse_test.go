package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnchors() map[string]*Expr {
	return map[string]*Expr{
		"easter": NewAnchorSingle(Date(2026, time.April, 5)),
		"fullmoon": NewAnchorSet([]time.Time{
			Date(2026, time.January, 3),
			Date(2026, time.February, 1),
		}),
	}
}

func TestParseAnchors(t *testing.T) {
	assert := assert.New(t)
	p := NewParser(testAnchors())

	t.Run("plain keyword", func(t *testing.T) {
		expr := p.Parse("Easter")
		require.NotNil(t, expr)
		assert.Equal(KindAnchorSingle, expr.Kind)
	})
	t.Run("offset suffix", func(t *testing.T) {
		expr := p.Parse("easter-2")
		require.NotNil(t, expr)
		assert.Equal(KindOffset, expr.Kind)
		assert.Equal(-2, expr.Days)
		assert.Equal(KindAnchorSingle, expr.Base.Kind)

		expr = p.Parse("FullMoon+1")
		require.NotNil(t, expr)
		assert.Equal(KindOffset, expr.Kind)
		assert.Equal(1, expr.Days)
		assert.Equal(KindAnchorSet, expr.Base.Kind)
	})
	t.Run("unknown keyword with offset is not an anchor", func(t *testing.T) {
		assert.Nil(p.Parse("notananchor-2"))
	})
}

func TestParseBareNames(t *testing.T) {
	assert := assert.New(t)
	p := NewParser(nil)

	t.Run("weekday", func(t *testing.T) {
		for _, field := range []string{"friday", "Friday", "fri", "FRI"} {
			expr := p.Parse(field)
			require.NotNil(t, expr, field)
			assert.Equal(KindEveryWeekday, expr.Kind)
			assert.Equal(time.Friday, expr.Weekday)
		}
	})
	t.Run("month means the first", func(t *testing.T) {
		for _, field := range []string{"june", "Jun", "JUNE"} {
			expr := p.Parse(field)
			require.NotNil(t, expr, field)
			assert.Equal(KindFixedMonthDay, expr.Kind)
			assert.Equal(time.June, expr.Month)
			assert.Equal(1, expr.Day)
		}
	})
}

func TestParseSlashFormats(t *testing.T) {
	assert := assert.New(t)
	p := NewParser(nil)

	t.Run("full date", func(t *testing.T) {
		for _, field := range []string{"2026/2/17", "2026-02-17"} {
			expr := p.Parse(field)
			require.NotNil(t, expr, field)
			assert.Equal(KindFullDate, expr.Kind)
			assert.Equal(2026, expr.Year)
			assert.Equal(time.February, expr.Month)
			assert.Equal(17, expr.Day)
		}
	})
	t.Run("mm/weekday offset", func(t *testing.T) {
		expr := p.Parse("03/Sun-1")
		require.NotNil(t, expr)
		assert.Equal(KindNthWeekdayOfMonth, expr.Kind)
		assert.Equal(time.March, expr.Month)
		assert.Equal(time.Sunday, expr.Weekday)
		assert.Equal(-1, expr.N)
	})
	t.Run("mm/weekday ordinal", func(t *testing.T) {
		expr := p.Parse("10/MonSecond")
		require.NotNil(t, expr)
		assert.Equal(KindNthWeekdayOfMonth, expr.Kind)
		assert.Equal(time.October, expr.Month)
		assert.Equal(time.Monday, expr.Weekday)
		assert.Equal(2, expr.N)
	})
	t.Run("month/weekday ordinal with day offset", func(t *testing.T) {
		expr := p.Parse("Oct/SatFourth-2")
		require.NotNil(t, expr)
		assert.Equal(KindOffset, expr.Kind)
		assert.Equal(-2, expr.Days)
		assert.Equal(KindNthWeekdayOfMonth, expr.Base.Kind)
		assert.Equal(time.October, expr.Base.Month)
		assert.Equal(time.Saturday, expr.Base.Weekday)
		assert.Equal(4, expr.Base.N)
	})
	t.Run("month name slash day", func(t *testing.T) {
		expr := p.Parse("apr/01")
		require.NotNil(t, expr)
		assert.Equal(KindFixedMonthDay, expr.Kind)
		assert.Equal(time.April, expr.Month)
		assert.Equal(1, expr.Day)
	})
	t.Run("mm/dd", func(t *testing.T) {
		expr := p.Parse("07/09")
		require.NotNil(t, expr)
		assert.Equal(KindFixedMonthDay, expr.Kind)
		assert.Equal(time.July, expr.Month)
		assert.Equal(9, expr.Day)
	})
}

func TestParseSpaceFormats(t *testing.T) {
	assert := assert.New(t)
	p := NewParser(nil)

	t.Run("month weekday offset", func(t *testing.T) {
		expr := p.Parse("May Sun+2")
		require.NotNil(t, expr)
		assert.Equal(KindNthWeekdayOfMonth, expr.Kind)
		assert.Equal(time.May, expr.Month)
		assert.Equal(time.Sunday, expr.Weekday)
		assert.Equal(2, expr.N)
	})
	t.Run("month day", func(t *testing.T) {
		for _, field := range []string{"Jul 9", "July 9", "  july 9  "} {
			expr := p.Parse(field)
			require.NotNil(t, expr, field)
			assert.Equal(KindFixedMonthDay, expr.Kind)
			assert.Equal(time.July, expr.Month)
			assert.Equal(9, expr.Day)
		}
	})
	t.Run("wildcard weekday", func(t *testing.T) {
		expr := p.Parse("* Fri+3")
		require.NotNil(t, expr)
		assert.Equal(KindNthWeekdayEveryMonth, expr.Kind)
		assert.Equal(time.Friday, expr.Weekday)
		assert.Equal(3, expr.N)
	})
	t.Run("wildcard day", func(t *testing.T) {
		expr := p.Parse("* 9")
		require.NotNil(t, expr)
		assert.Equal(KindWildcardDay, expr.Kind)
		assert.Equal(9, expr.Day)
	})
	t.Run("weekday ordinal then month", func(t *testing.T) {
		expr := p.Parse("SunFirst Aug")
		require.NotNil(t, expr)
		assert.Equal(KindNthWeekdayOfMonth, expr.Kind)
		assert.Equal(time.August, expr.Month)
		assert.Equal(time.Sunday, expr.Weekday)
		assert.Equal(1, expr.N)

		expr = p.Parse("ThuLast Nov")
		require.NotNil(t, expr)
		assert.Equal(-1, expr.N)
	})
	t.Run("day then month", func(t *testing.T) {
		expr := p.Parse("01 Jan")
		require.NotNil(t, expr)
		assert.Equal(KindFixedMonthDay, expr.Kind)
		assert.Equal(time.January, expr.Month)
		assert.Equal(1, expr.Day)
	})
}

func TestParseUnparseable(t *testing.T) {
	assert := assert.New(t)
	p := NewParser(testAnchors())
	for _, field := range []string{
		"",
		"notadate",
		"13 zzz",
		"foo/bar",
		"* zz",
		"99 nonmonth",
		"mon second",
	} {
		assert.Nil(p.Parse(field), "field '%s'", field)
	}
}
