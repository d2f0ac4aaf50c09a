package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingEndTime(t *testing.T) {
	b := &Booking{
		StartTime:       time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
	}
	assert.Equal(t, time.Date(2025, 6, 10, 10, 30, 0, 0, time.UTC), b.EndTime())
}

func TestBookingStatusHelpers(t *testing.T) {
	tests := []struct {
		status        BookingStatus
		blocks        bool
		cancellable   bool
		reschedulable bool
	}{
		{StatusConfirmed, true, true, true},
		{StatusCancelled, false, false, false},
		{StatusCompleted, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.blocks, b.Blocks())
			assert.Equal(t, tt.cancellable, b.CanBeCancelled())
			assert.Equal(t, tt.reschedulable, b.CanBeRescheduled())
		})
	}
}

func TestIsAllowedDuration(t *testing.T) {
	assert.True(t, IsAllowedDuration(30))
	assert.True(t, IsAllowedDuration(60))
	assert.False(t, IsAllowedDuration(0))
	assert.False(t, IsAllowedDuration(45))
	assert.False(t, IsAllowedDuration(90))
}
