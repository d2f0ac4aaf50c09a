package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByDay_BucketsByViewerLocalDate(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-06-10 23:30 and 2025-06-11 00:00 in New York; both are
	// 2025-06-11 in UTC (03:30 and 04:00).
	lateEvening := time.Date(2025, 6, 11, 3, 30, 0, 0, time.UTC)
	midnight := time.Date(2025, 6, 11, 4, 0, 0, 0, time.UTC)

	slotsIn := []BookableSlot{
		{Start: lateEvening, End: lateEvening.Add(30 * time.Minute)},
		{Start: midnight, End: midnight.Add(30 * time.Minute)},
	}

	// Grouped for a New York viewer the two slots fall on different days.
	local := GroupByDay(slotsIn, newYork)
	require.Len(t, local, 2)
	assert.Equal(t, "2025-06-10", local[0].Day)
	assert.Equal(t, "2025-06-11", local[1].Day)

	// Grouped in UTC they share a day.
	utc := GroupByDay(slotsIn, time.UTC)
	require.Len(t, utc, 1)
	assert.Equal(t, "2025-06-11", utc[0].Day)
	assert.Len(t, utc[0].Slots, 2)
}

func TestGroupByDay_NilLocationDefaultsToUTC(t *testing.T) {
	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	got := GroupByDay([]BookableSlot{{Start: start, End: start.Add(time.Hour)}}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, "2025-06-10", got[0].Day)
}

func TestGroupByDay_EmptyInput(t *testing.T) {
	got := GroupByDay(nil, time.UTC)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGroupByDay_PreservesSlotOrderWithinDays(t *testing.T) {
	base := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	slotsIn := make([]BookableSlot, 0, 6)
	for i := 0; i < 6; i++ {
		start := base.Add(time.Duration(i) * 30 * time.Minute)
		slotsIn = append(slotsIn, BookableSlot{Start: start, End: start.Add(30 * time.Minute)})
	}

	got := GroupByDay(slotsIn, time.UTC)
	require.Len(t, got, 1)
	require.Len(t, got[0].Slots, 6)
	for i := 1; i < 6; i++ {
		assert.True(t, got[0].Slots[i-1].Start.Before(got[0].Slots[i].Start))
	}
}
