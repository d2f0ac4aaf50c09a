package domain

// Slot grid configuration. All bookable start times are snapped to a fixed
// 30-minute grid anchored at the Unix epoch.
const (
	GridMinutes       = 30
	DefaultWindowDays = 7
	MaxWindowDays     = 60
)

// Business validation constants
const (
	MaxIntervalHours            = 14 // longest open block a coach can declare
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxLessonTypeLength         = 100
)

// AllowedDurations lists the lesson lengths offered for booking, in minutes.
var AllowedDurations = []int{30, 60}

// IsAllowedDuration reports whether minutes is one of the offered lesson
// lengths.
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists booking statuses that never occupy time.
// Used when filtering bookings for slot computation.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
