package scheduling

import (
	"testing"
	"time"

	"malone/config"
	"malone/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday December 1, 2025; the reference Pueblo day is the next morning.
var availabilityToday = time.Date(2025, time.December, 1, 10, 0, 0, 0, config.Location())

func TestNextAvailableDatesHome(t *testing.T) {
	dates, err := NextAvailableDates(models.ZoneHome, 5, availabilityToday)
	require.NoError(t, err)
	require.Len(t, dates, 5)

	for i, d := range dates {
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
		assert.True(t, d.After(availabilityToday), "date %s must be after today", d)
		if i > 0 {
			assert.True(t, d.After(dates[i-1]), "dates must be strictly ascending")
		}
	}
	// Dec 2-5 then Monday Dec 8.
	assert.Equal(t, 2, dates[0].Day())
	assert.Equal(t, 5, dates[3].Day())
	assert.Equal(t, 8, dates[4].Day())
}

func TestNextAvailableDatesPueblo(t *testing.T) {
	dates, err := NextAvailableDates(models.ZonePueblo, 5, availabilityToday)
	require.NoError(t, err)
	require.Len(t, dates, 5)

	days := make([]int, len(dates))
	for i, d := range dates {
		require.True(t, IsPuebloDay(d), "date %s must be a Pueblo day", d)
		require.NotEqual(t, time.Saturday, d.Weekday())
		require.NotEqual(t, time.Sunday, d.Weekday())
		days[i] = d.Day()
	}
	// Dec 6 is a Pueblo day but a Saturday, so the cycle jumps to Monday the 8th.
	assert.Equal(t, []int{2, 4, 8, 10, 12}, days)
}

func TestNextAvailableDatesValley(t *testing.T) {
	dates, err := NextAvailableDates(models.ZoneValley, 5, availabilityToday)
	require.NoError(t, err)
	require.Len(t, dates, 5)

	days := make([]int, len(dates))
	for i, d := range dates {
		require.False(t, IsPuebloDay(d), "date %s must be a Valley day", d)
		require.NotEqual(t, time.Saturday, d.Weekday())
		require.NotEqual(t, time.Sunday, d.Weekday())
		days[i] = d.Day()
	}
	// Dec 13 (Sat) and 14 (Sun) push the fifth Valley day to Monday the 15th.
	assert.Equal(t, []int{3, 5, 9, 11, 15}, days)
}

func TestNextAvailableDatesUnknownZone(t *testing.T) {
	dates, err := NextAvailableDates(models.ZoneUnknown, 5, availabilityToday)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestNextAvailableDatesZeroCount(t *testing.T) {
	dates, err := NextAvailableDates(models.ZoneHome, 0, availabilityToday)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestNextAvailableDatesCapExceeded(t *testing.T) {
	// More eligible days than fit in the lookahead window: the scan reports
	// exhaustion instead of spinning.
	_, err := NextAvailableDates(models.ZonePueblo, 100, availabilityToday)
	require.Error(t, err)

	var schedErr *SchedulingError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, "noAvailability", schedErr.Code)
}

func TestNextAvailableDatesStartsDayAfterToday(t *testing.T) {
	// Even early in the morning, today is never offered.
	morning := time.Date(2025, time.December, 2, 6, 0, 0, 0, config.Location())
	dates, err := NextAvailableDates(models.ZonePueblo, 1, morning)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, 4, dates[0].Day())
}
