package recur

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questcal/internal/model"
)

func TestSessions_Weekly(t *testing.T) {
	ev, err := NewEngine(MonthDayYear).Event(lecture())
	require.NoError(t, err)

	res, err := Sessions(ev, 0)
	require.NoError(t, err)
	require.Len(t, res.Starts, 39)
	assert.False(t, res.Truncated)

	first := res.Starts[0]
	assert.True(t, time.Date(2025, time.January, 6, 10, 30, 0, 0, Toronto).Equal(first))

	// Wall-clock time holds across the March DST change.
	last := res.Starts[len(res.Starts)-1].In(Toronto)
	assert.Equal(t, time.April, last.Month())
	assert.Equal(t, 4, last.Day())
	assert.Equal(t, 10, last.Hour())
	assert.Equal(t, 30, last.Minute())

	for _, s := range res.Starts {
		wd := s.In(Toronto).Weekday()
		assert.Contains(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, wd)
	}
}

func TestSessions_Cap(t *testing.T) {
	ev, err := NewEngine(MonthDayYear).Event(lecture())
	require.NoError(t, err)

	res, err := Sessions(ev, 10)
	require.NoError(t, err)
	assert.Len(t, res.Starts, 10)
	assert.True(t, res.Truncated)
}

func TestSessions_SingleEvent(t *testing.T) {
	start := time.Date(2025, time.January, 6, 10, 30, 0, 0, Toronto)
	res, err := Sessions(model.CalendarEvent{
		Start: mo.Some(start),
		Until: mo.None[time.Time](),
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{start}, res.Starts)
}

func TestSessions_NoStart(t *testing.T) {
	_, err := Sessions(model.CalendarEvent{}, 0)
	assert.Error(t, err)
}

func TestSessions_FarFutureEndStopsAtCap(t *testing.T) {
	rec := lecture()
	rec.Days = model.NewWeekdays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
	rec.EndDate = "12/31/9999"
	ev, err := NewEngine(MonthDayYear).Event(rec)
	require.NoError(t, err)

	began := time.Now()
	res, err := Sessions(ev, 10)
	require.NoError(t, err)

	assert.Less(t, time.Since(began), time.Second)
	assert.Len(t, res.Starts, 10)
	assert.True(t, res.Truncated)
	assert.True(t, time.Date(2025, time.January, 17, 10, 30, 0, 0, Toronto).Equal(res.Starts[9]))
}

func TestTake(t *testing.T) {
	seq := []time.Time{
		time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
	next := func() func() (time.Time, bool) {
		i := 0
		return func() (time.Time, bool) {
			if i >= len(seq) {
				return time.Time{}, false
			}
			i++
			return seq[i-1], true
		}
	}

	got, more := Take(next(), 3)
	assert.Equal(t, seq, got)
	assert.False(t, more)

	got, more = Take(next(), 2)
	assert.Equal(t, seq[:2], got)
	assert.True(t, more)
}
