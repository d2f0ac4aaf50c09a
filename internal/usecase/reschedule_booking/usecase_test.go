package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	bookingRepo "github.com/ethanriley28/baseball-lessons-app-sub000/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	blocking  []*domain.Booking
	updateErr error

	gotStart    time.Time
	gotDuration int
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) ListBlockingInWindow(context.Context, int64, time.Time, time.Time) ([]*domain.Booking, error) {
	return f.blocking, nil
}

func (f *fakeBookingRepo) UpdateTimes(_ context.Context, _ int64, start time.Time, duration int) (*domain.Booking, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.gotStart, f.gotDuration = start, duration
	out := *f.booking
	out.StartTime = start
	out.DurationMinutes = duration
	out.UpdatedAt = time.Now()
	return &out, nil
}

type fakeAvailabilityRepo struct {
	intervals []*domain.AvailabilityInterval
}

func (f *fakeAvailabilityRepo) ListInWindow(context.Context, int64, time.Time, time.Time) ([]*domain.AvailabilityInterval, error) {
	return f.intervals, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func utc(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:              11,
		PlayerID:        3,
		CoachID:         7,
		StartTime:       utc(2025, 6, 10, 9, 0),
		DurationMinutes: 60,
		LessonType:      "hitting",
		Status:          domain.StatusConfirmed,
	}
}

func coveringAvailability() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{intervals: []*domain.AvailabilityInterval{
		{ID: 1, CoachID: 7, StartTime: utc(2025, 6, 10, 8, 0), EndTime: utc(2025, 6, 10, 18, 0)},
	}}
}

func newTestUseCase(bk *fakeBookingRepo, av *fakeAvailabilityRepo, now time.Time) *UseCase {
	uc := NewUseCase(bk, av, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestExecute_MovesBooking(t *testing.T) {
	bk := &fakeBookingRepo{booking: existingBooking()}
	uc := newTestUseCase(bk, coveringAvailability(), utc(2025, 6, 9, 12, 0))

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 11,
		PlayerID:  3,
		StartTime: utc(2025, 6, 10, 14, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, utc(2025, 6, 10, 14, 0), resp.StartTime)
	assert.Equal(t, utc(2025, 6, 10, 15, 0), resp.EndTime)
	// Duration carried over from the original booking.
	assert.Equal(t, 60, bk.gotDuration)
}

func TestExecute_ChangesDuration(t *testing.T) {
	bk := &fakeBookingRepo{booking: existingBooking()}
	uc := newTestUseCase(bk, coveringAvailability(), utc(2025, 6, 9, 12, 0))

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:       11,
		PlayerID:        3,
		StartTime:       utc(2025, 6, 10, 14, 0),
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestExecute_IgnoresOwnBookingWhenCheckingConflicts(t *testing.T) {
	// Moving 9:00 -> 9:30 overlaps the booking's old position; that must
	// not count as a conflict.
	own := existingBooking()
	bk := &fakeBookingRepo{booking: own, blocking: []*domain.Booking{own}}
	uc := newTestUseCase(bk, coveringAvailability(), utc(2025, 6, 9, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 11,
		PlayerID:  3,
		StartTime: utc(2025, 6, 10, 9, 30),
	})
	assert.NoError(t, err)
}

func TestExecute_RejectsConflictWithAnotherBooking(t *testing.T) {
	other := &domain.Booking{
		ID: 12, CoachID: 7, StartTime: utc(2025, 6, 10, 14, 30),
		DurationMinutes: 60, Status: domain.StatusConfirmed,
	}
	bk := &fakeBookingRepo{booking: existingBooking(), blocking: []*domain.Booking{other}}
	uc := newTestUseCase(bk, coveringAvailability(), utc(2025, 6, 9, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 11,
		PlayerID:  3,
		StartTime: utc(2025, 6, 10, 14, 0),
	})
	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
}

func TestExecute_RejectsForeignBooking(t *testing.T) {
	bk := &fakeBookingRepo{booking: existingBooking()}
	uc := newTestUseCase(bk, coveringAvailability(), utc(2025, 6, 9, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 11,
		PlayerID:  99,
		StartTime: utc(2025, 6, 10, 14, 0),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_RejectsNonConfirmedBooking(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			b := existingBooking()
			b.Status = status
			uc := newTestUseCase(&fakeBookingRepo{booking: b}, coveringAvailability(), utc(2025, 6, 9, 12, 0))

			_, err := uc.Execute(context.Background(), &Request{
				BookingID: 11,
				PlayerID:  3,
				StartTime: utc(2025, 6, 10, 14, 0),
			})
			assert.ErrorIs(t, err, ErrCannotReschedule)
		})
	}
}

func TestExecute_RejectsMissingBooking(t *testing.T) {
	bk := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(bk, coveringAvailability(), utc(2025, 6, 9, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 11,
		PlayerID:  3,
		StartTime: utc(2025, 6, 10, 14, 0),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_RejectsSlotOutsideAvailability(t *testing.T) {
	bk := &fakeBookingRepo{booking: existingBooking()}
	uc := newTestUseCase(bk, &fakeAvailabilityRepo{}, utc(2025, 6, 9, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 11,
		PlayerID:  3,
		StartTime: utc(2025, 6, 10, 14, 0),
	})
	assert.ErrorIs(t, err, ErrOutsideAvailability)
}

func TestExecute_MapsExclusionViolationToSlotNoLongerAvailable(t *testing.T) {
	bk := &fakeBookingRepo{booking: existingBooking(), updateErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(bk, coveringAvailability(), utc(2025, 6, 9, 12, 0))

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 11,
		PlayerID:  3,
		StartTime: utc(2025, 6, 10, 14, 0),
	})
	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
}

func TestExecute_RejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"zero booking", Request{PlayerID: 3, StartTime: utc(2025, 6, 10, 14, 0)}, ErrInvalidInput},
		{"zero player", Request{BookingID: 11, StartTime: utc(2025, 6, 10, 14, 0)}, ErrInvalidInput},
		{"zero start", Request{BookingID: 11, PlayerID: 3}, ErrInvalidInput},
		{"duration 45", Request{BookingID: 11, PlayerID: 3, StartTime: utc(2025, 6, 10, 14, 0), DurationMinutes: 45}, ErrInvalidDuration},
		{"off-grid start", Request{BookingID: 11, PlayerID: 3, StartTime: utc(2025, 6, 10, 14, 10)}, ErrInvalidStartTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{booking: existingBooking()}, coveringAvailability(), utc(2025, 6, 9, 12, 0))
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RejectsPastStart(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{booking: existingBooking()}, coveringAvailability(), utc(2025, 6, 10, 15, 0))

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 11,
		PlayerID:  3,
		StartTime: utc(2025, 6, 10, 14, 0),
	})
	assert.ErrorIs(t, err, ErrStartTimeInPast)
}
