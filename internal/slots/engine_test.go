package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
)

// day is an arbitrary fixed date; all times below are UTC instants on it.
func at(hour, min int) time.Time {
	return time.Date(2025, 6, 10, hour, min, 0, 0, time.UTC)
}

func dayWindow() SlotRequest {
	return SlotRequest{
		WindowStart: at(0, 0),
		WindowEnd:   at(23, 59),
		GridMinutes: 30,
	}
}

func starts(slots []BookableSlot) []time.Time {
	out := make([]time.Time, len(slots))
	for i, s := range slots {
		out[i] = s.Start
	}
	return out
}

func TestComputeBookableSlots_SixtyMinuteLessonsFillOpenBlock(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 60

	availability := []AvailabilityInterval{
		{Start: at(9, 0), End: at(11, 0)},
	}

	got, err := ComputeBookableSlots(req, availability, nil)
	require.NoError(t, err)

	// 10:30 is excluded: a 60-minute lesson from 10:30 would end at 11:30.
	assert.Equal(t, []time.Time{at(9, 0), at(9, 30), at(10, 0)}, starts(got))
	for _, s := range got {
		assert.Equal(t, s.Start.Add(60*time.Minute), s.End)
	}
}

func TestComputeBookableSlots_ConfirmedBookingBlocksOverlappingStarts(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 60

	availability := []AvailabilityInterval{
		{Start: at(9, 0), End: at(11, 0)},
	}
	booked := []BookedInterval{
		{Start: at(9, 30), End: at(10, 30), Status: domain.StatusConfirmed},
	}

	got, err := ComputeBookableSlots(req, availability, booked)
	require.NoError(t, err)

	// 09:30 and 10:00 overlap the booking; only 09:00 survives (it ends
	// exactly when the booking starts, which is not an overlap).
	assert.Equal(t, []time.Time{at(9, 0)}, starts(got))
}

func TestComputeBookableSlots_OverlappingIntervalsDeduplicate(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 30

	availability := []AvailabilityInterval{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(9, 30), End: at(11, 0)},
	}

	got, err := ComputeBookableSlots(req, availability, nil)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{at(9, 0), at(9, 30), at(10, 0), at(10, 30)}, starts(got))
}

func TestComputeBookableSlots_EmptyWindowIsRejected(t *testing.T) {
	req := SlotRequest{
		WindowStart:     at(9, 0),
		WindowEnd:       at(9, 0),
		DurationMinutes: 30,
	}

	got, err := ComputeBookableSlots(req, []AvailabilityInterval{{Start: at(9, 0), End: at(11, 0)}}, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)
	assert.Nil(t, got)

	req.WindowEnd = at(8, 0)
	_, err = ComputeBookableSlots(req, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestComputeBookableSlots_OffGridDurationIsRejectedNotCoerced(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 45

	got, err := ComputeBookableSlots(req, []AvailabilityInterval{{Start: at(9, 0), End: at(11, 0)}}, nil)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Nil(t, got)

	for _, bad := range []int{0, -30, 7} {
		req.DurationMinutes = bad
		_, err := ComputeBookableSlots(req, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d", bad)
	}
}

func TestComputeBookableSlots_CancelledBookingNeverBlocks(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 60

	availability := []AvailabilityInterval{
		{Start: at(9, 0), End: at(11, 0)},
	}
	booked := []BookedInterval{
		// Covers the whole block but was cancelled.
		{Start: at(9, 0), End: at(11, 0), Status: domain.StatusCancelled},
	}

	got, err := ComputeBookableSlots(req, availability, booked)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(9, 0), at(9, 30), at(10, 0)}, starts(got))
}

func TestComputeBookableSlots_EmptyAvailabilityYieldsEmptyOutput(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 30

	got, err := ComputeBookableSlots(req, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComputeBookableSlots_FullyBookedIntervalYieldsNoSlots(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 30

	availability := []AvailabilityInterval{
		{Start: at(9, 0), End: at(10, 0)},
	}
	booked := []BookedInterval{
		{Start: at(9, 0), End: at(10, 0), Status: domain.StatusConfirmed},
	}

	got, err := ComputeBookableSlots(req, availability, booked)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComputeBookableSlots_OffGridAvailabilitySnapsUpward(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 30

	// Coach entered 09:10-10:40; candidates snap to the epoch-anchored
	// grid, not to the interval's own start.
	availability := []AvailabilityInterval{
		{Start: at(9, 10), End: at(10, 40)},
	}

	got, err := ComputeBookableSlots(req, availability, nil)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(9, 30), at(10, 0)}, starts(got))
}

func TestComputeBookableSlots_ClipsToWindow(t *testing.T) {
	req := SlotRequest{
		WindowStart:     at(9, 45),
		WindowEnd:       at(11, 0),
		DurationMinutes: 30,
		GridMinutes:     30,
	}

	availability := []AvailabilityInterval{
		{Start: at(8, 0), End: at(12, 0)},
	}

	got, err := ComputeBookableSlots(req, availability, nil)
	require.NoError(t, err)

	// 09:45 snaps to 10:00; the 11:00 candidate would end past the window.
	assert.Equal(t, []time.Time{at(10, 0), at(10, 30)}, starts(got))
}

func TestComputeBookableSlots_OutputIsStrictlyAscendingWithoutDuplicates(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 30

	availability := []AvailabilityInterval{
		{Start: at(14, 0), End: at(16, 0)},
		{Start: at(9, 0), End: at(10, 30)},
		{Start: at(9, 0), End: at(10, 30)}, // exact duplicate block
		{Start: at(15, 0), End: at(17, 0)},
	}

	got, err := ComputeBookableSlots(req, availability, nil)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Start.Before(got[i].Start),
			"slot %d (%v) not strictly after slot %d (%v)", i, got[i].Start, i-1, got[i-1].Start)
	}
}

func TestComputeBookableSlots_NoSlotOverlapsAConfirmedBooking(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 60

	availability := []AvailabilityInterval{
		{Start: at(8, 0), End: at(13, 0)},
		{Start: at(12, 0), End: at(18, 30)},
	}
	booked := []BookedInterval{
		{Start: at(9, 0), End: at(10, 0), Status: domain.StatusConfirmed},
		{Start: at(13, 30), End: at(14, 30), Status: domain.StatusConfirmed},
		{Start: at(16, 0), End: at(16, 30), Status: domain.StatusConfirmed},
	}

	got, err := ComputeBookableSlots(req, availability, booked)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for _, s := range got {
		for _, b := range booked {
			assert.False(t, Overlaps(s.Start, s.End, b.Start, b.End),
				"slot %v-%v overlaps booking %v-%v", s.Start, s.End, b.Start, b.End)
		}
	}
}

func TestComputeBookableSlots_EveryStartIsGridAligned(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 30

	availability := []AvailabilityInterval{
		{Start: at(9, 7), End: at(12, 0)},
		{Start: at(13, 1), End: at(15, 59)},
	}

	got, err := ComputeBookableSlots(req, availability, nil)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for _, s := range got {
		assert.True(t, IsGridAligned(s.Start, 30), "start %v not on 30-minute grid", s.Start)
	}
}

func TestComputeBookableSlots_EverySlotIsContainedInAnAvailabilityInterval(t *testing.T) {
	req := SlotRequest{
		WindowStart:     at(9, 0),
		WindowEnd:       at(15, 0),
		DurationMinutes: 60,
		GridMinutes:     30,
	}

	availability := []AvailabilityInterval{
		{Start: at(8, 0), End: at(10, 30)},
		{Start: at(12, 0), End: at(16, 0)},
	}

	got, err := ComputeBookableSlots(req, availability, nil)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for _, s := range got {
		contained := false
		for _, av := range availability {
			clippedStart, clippedEnd := av.Start, av.End
			if clippedStart.Before(req.WindowStart) {
				clippedStart = req.WindowStart
			}
			if clippedEnd.After(req.WindowEnd) {
				clippedEnd = req.WindowEnd
			}
			if !s.Start.Before(clippedStart) && !s.End.After(clippedEnd) {
				contained = true
				break
			}
		}
		assert.True(t, contained, "slot %v-%v not contained in any clipped interval", s.Start, s.End)
	}
}

func TestComputeBookableSlots_IsDeterministic(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 60

	availability := []AvailabilityInterval{
		{Start: at(9, 0), End: at(12, 0)},
		{Start: at(10, 30), End: at(14, 0)},
	}
	booked := []BookedInterval{
		{Start: at(11, 0), End: at(12, 0), Status: domain.StatusConfirmed},
		{Start: at(12, 0), End: at(13, 0), Status: domain.StatusCancelled},
	}

	first, err := ComputeBookableSlots(req, availability, booked)
	require.NoError(t, err)
	second, err := ComputeBookableSlots(req, availability, booked)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeBookableSlots_DoesNotBridgeGapsBetweenIntervals(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 60

	// Two 30-minute blocks separated by a gap: no 60-minute lesson fits in
	// either, and blocks are not merged across the gap.
	availability := []AvailabilityInterval{
		{Start: at(9, 0), End: at(9, 30)},
		{Start: at(10, 0), End: at(10, 30)},
	}

	got, err := ComputeBookableSlots(req, availability, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Back-to-back blocks are not merged either: each is too short alone.
	adjacent := []AvailabilityInterval{
		{Start: at(9, 0), End: at(9, 30)},
		{Start: at(9, 30), End: at(10, 0)},
	}
	got, err = ComputeBookableSlots(req, adjacent, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComputeBookableSlots_BoundaryTouchingBookingDoesNotBlock(t *testing.T) {
	req := dayWindow()
	req.DurationMinutes = 30

	availability := []AvailabilityInterval{
		{Start: at(11, 30), End: at(12, 0)},
	}
	booked := []BookedInterval{
		{Start: at(11, 0), End: at(11, 30), Status: domain.StatusConfirmed},
		{Start: at(12, 0), End: at(12, 30), Status: domain.StatusConfirmed},
	}

	got, err := ComputeBookableSlots(req, availability, booked)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at(11, 30)}, starts(got))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"partial overlap", at(11, 30), at(12, 0), at(11, 20), at(11, 40), true},
		{"contained", at(11, 0), at(12, 0), at(11, 15), at(11, 45), true},
		{"touching before", at(11, 30), at(12, 0), at(11, 0), at(11, 30), false},
		{"touching after", at(11, 30), at(12, 0), at(12, 0), at(12, 30), false},
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestIsGridAligned(t *testing.T) {
	assert.True(t, IsGridAligned(at(9, 0), 30))
	assert.True(t, IsGridAligned(at(9, 30), 30))
	assert.False(t, IsGridAligned(at(9, 10), 30))
	assert.False(t, IsGridAligned(at(9, 0).Add(time.Second), 30))
	assert.False(t, IsGridAligned(at(9, 0), 0))
}
