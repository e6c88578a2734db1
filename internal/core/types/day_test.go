package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayTruncatesToMidnight(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	instant := time.Date(2026, 3, 14, 23, 45, 12, 999, seoul)
	day := Day(instant)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, seoul), day)
	assert.Equal(t, seoul, day.Location())
}

func TestPreviousDay(t *testing.T) {
	assert.Equal(t,
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		PreviousDay(time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)),
	)
	// Month boundary going backwards across a 31-day month.
	assert.Equal(t,
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		PreviousDay(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)),
	)
}

func TestParseDay(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	day, err := ParseDay("2026-03-14", seoul)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, seoul), day)

	_, err = ParseDay("14/03/2026", seoul)
	assert.Error(t, err)

	_, err = ParseDay("", seoul)
	assert.Error(t, err)
}

func TestFormatDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2026-03-14", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", FormatDay(day))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 14, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
