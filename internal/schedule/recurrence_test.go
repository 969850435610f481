package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestParsePattern(t *testing.T) {
	cases := map[string]Pattern{
		"":        PatternNone,
		"none":    PatternNone,
		"Daily":   PatternDaily,
		"WEEKLY":  PatternWeekly,
		"monthly": PatternMonthly,
	}
	for raw, want := range cases {
		got, err := ParsePattern(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParsePattern("fortnightly")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseWeekdays(t *testing.T) {
	wds, err := ParseWeekdays([]string{"Monday", "wed", "monday"})
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, wds)

	_, err = ParseWeekdays([]string{"caturday"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExpandNone(t *testing.T) {
	dates, err := ExpandDates(d(2026, 9, 5), d(2026, 9, 20), PatternNone, nil, testToday)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{d(2026, 9, 5)}, dates)
}

func TestExpandDaily(t *testing.T) {
	dates, err := ExpandDates(d(2026, 9, 5), d(2026, 9, 8), PatternDaily, nil, testToday)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{d(2026, 9, 5), d(2026, 9, 6), d(2026, 9, 7), d(2026, 9, 8)}, dates)
}

func TestExpandWeekly(t *testing.T) {
	// 2026-09-07 is a Monday.
	dates, err := ExpandDates(d(2026, 9, 5), d(2026, 9, 18), PatternWeekly,
		[]time.Weekday{time.Monday, time.Friday}, testToday)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		d(2026, 9, 7),  // Mon
		d(2026, 9, 11), // Fri
		d(2026, 9, 14), // Mon
		d(2026, 9, 18), // Fri
	}, dates)
}

func TestExpandWeeklyEmptySet(t *testing.T) {
	_, err := ExpandDates(d(2026, 9, 5), d(2026, 9, 18), PatternWeekly, nil, testToday)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExpandMonthly(t *testing.T) {
	dates, err := ExpandDates(d(2026, 9, 5), d(2026, 11, 20), PatternMonthly, nil, testToday)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{d(2026, 9, 5), d(2026, 10, 5), d(2026, 11, 5)}, dates)
}

func TestExpandStartInPast(t *testing.T) {
	_, err := ExpandDates(testToday.AddDate(0, 0, -1), testToday, PatternDaily, nil, testToday)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExpandEndBeforeStart(t *testing.T) {
	_, err := ExpandDates(d(2026, 9, 10), d(2026, 9, 5), PatternDaily, nil, testToday)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExpandBeyondHorizon(t *testing.T) {
	_, err := ExpandDates(testToday, testToday.AddDate(0, 0, 91), PatternDaily, nil, testToday)
	assert.ErrorIs(t, err, ErrValidation)

	// exactly at the horizon is allowed
	_, err = ExpandDates(testToday, testToday.AddDate(0, 0, 90), PatternNone, nil, testToday)
	assert.NoError(t, err)
}

func TestExpandIdempotent(t *testing.T) {
	first, err := ExpandDates(d(2026, 9, 5), d(2026, 10, 5), PatternWeekly,
		[]time.Weekday{time.Tuesday, time.Saturday}, testToday)
	require.NoError(t, err)

	second, err := ExpandDates(d(2026, 9, 5), d(2026, 10, 5), PatternWeekly,
		[]time.Weekday{time.Tuesday, time.Saturday}, testToday)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i].After(first[i-1]), "dates must be strictly increasing")
	}
}

func TestExpandNormalizesTimeOfDay(t *testing.T) {
	noisy := time.Date(2026, 9, 5, 17, 42, 13, 0, time.UTC)
	dates, err := ExpandDates(noisy, noisy, PatternNone, nil, testToday)
	require.NoError(t, err)
	assert.Equal(t, d(2026, 9, 5), dates[0])
}
