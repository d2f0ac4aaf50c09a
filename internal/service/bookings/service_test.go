package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	bookingRepo "github.com/ethanriley28/baseball-lessons-app-sub000/internal/infra/storage/booking"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	byPlayer []*domain.Booking
	byCoach  []*domain.Booking

	cancelledID  int64
	cancelReason string
	completedID  int64

	gotFilter domain.CoachBookingsFilter
	gotStatus *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) ListByPlayer(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.gotStatus = status
	return f.byPlayer, nil
}

func (f *fakeBookingRepo) ListByCoach(_ context.Context, filter domain.CoachBookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = filter
	return f.byCoach, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID, f.cancelReason = id, reason
	return nil
}

func (f *fakeBookingRepo) Complete(_ context.Context, id int64) error {
	f.completedID = id
	return nil
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

func confirmedBooking() *domain.Booking {
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

func newTestService(repo *fakeBookingRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedClock{now: now}
	return svc
}

func TestGetByID(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := newTestService(repo, utc(2025, 6, 9, 12, 0))

	t.Run("player sees own booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 11, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.ID)
		assert.Equal(t, utc(2025, 6, 10, 10, 0), resp.EndTime)
	})

	t.Run("coach sees own booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 11, 7)
		assert.NoError(t, err)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 11, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing booking", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, utc(2025, 6, 9, 12, 0))
		_, err := svc.GetByID(context.Background(), 11, 3)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetPlayerBookings(t *testing.T) {
	repo := &fakeBookingRepo{byPlayer: []*domain.Booking{confirmedBooking()}}
	svc := newTestService(repo, utc(2025, 6, 9, 12, 0))

	status := "confirmed"
	resp, err := svc.GetPlayerBookings(context.Background(), &models.GetPlayerBookingsRequest{
		PlayerID: 3,
		Status:   &status,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	require.NotNil(t, repo.gotStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.gotStatus)

	bad := "unknown"
	_, err = svc.GetPlayerBookings(context.Background(), &models.GetPlayerBookingsRequest{
		PlayerID: 3,
		Status:   &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetCoachBookings(t *testing.T) {
	repo := &fakeBookingRepo{byCoach: []*domain.Booking{confirmedBooking()}}
	svc := newTestService(repo, utc(2025, 6, 9, 12, 0))

	from, to := utc(2025, 6, 10, 0, 0), utc(2025, 6, 17, 0, 0)
	resp, err := svc.GetCoachBookings(context.Background(), &models.GetCoachBookingsRequest{
		CoachID:   7,
		StartDate: &from,
		EndDate:   &to,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(7), repo.gotFilter.CoachID)

	_, err = svc.GetCoachBookings(context.Background(), &models.GetCoachBookingsRequest{
		CoachID:   7,
		StartDate: &to,
		EndDate:   &from,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	t.Run("player cancels own booking", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking()}
		svc := newTestService(repo, utc(2025, 6, 9, 12, 0))

		err := svc.Cancel(context.Background(), 11, &models.CancelBookingRequest{
			RequesterID:        3,
			CancellationReason: "schedule conflict",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), repo.cancelledID)
		assert.Equal(t, "schedule conflict", repo.cancelReason)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{booking: confirmedBooking()}, utc(2025, 6, 9, 12, 0))
		err := svc.Cancel(context.Background(), 11, &models.CancelBookingRequest{RequesterID: 99})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled booking cannot be cancelled again", func(t *testing.T) {
		b := confirmedBooking()
		b.Status = domain.StatusCancelled
		svc := newTestService(&fakeBookingRepo{booking: b}, utc(2025, 6, 9, 12, 0))

		err := svc.Cancel(context.Background(), 11, &models.CancelBookingRequest{RequesterID: 3})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("oversized reason", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{booking: confirmedBooking()}, utc(2025, 6, 9, 12, 0))
		long := string(make([]byte, domain.MaxCancellationReasonLength+1))

		err := svc.Cancel(context.Background(), 11, &models.CancelBookingRequest{
			RequesterID:        3,
			CancellationReason: long,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestComplete(t *testing.T) {
	t.Run("coach completes ended lesson", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking()}
		svc := newTestService(repo, utc(2025, 6, 10, 11, 0))

		err := svc.Complete(context.Background(), 11, &models.CompleteBookingRequest{CoachID: 7})
		require.NoError(t, err)
		assert.Equal(t, int64(11), repo.completedID)
	})

	t.Run("lesson still running", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{booking: confirmedBooking()}, utc(2025, 6, 10, 9, 30))
		err := svc.Complete(context.Background(), 11, &models.CompleteBookingRequest{CoachID: 7})
		assert.ErrorIs(t, err, ErrCannotComplete)
	})

	t.Run("player cannot complete", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{booking: confirmedBooking()}, utc(2025, 6, 10, 11, 0))
		err := svc.Complete(context.Background(), 11, &models.CompleteBookingRequest{CoachID: 3})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled booking cannot be completed", func(t *testing.T) {
		b := confirmedBooking()
		b.Status = domain.StatusCancelled
		svc := newTestService(&fakeBookingRepo{booking: b}, utc(2025, 6, 10, 11, 0))

		err := svc.Complete(context.Background(), 11, &models.CompleteBookingRequest{CoachID: 7})
		assert.ErrorIs(t, err, ErrCannotComplete)
	})
}
