package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	availabilityRepo "github.com/ethanriley28/baseball-lessons-app-sub000/internal/infra/storage/availability"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/availability/models"
)

type fakeAvailabilityRepo struct {
	existing  []*domain.AvailabilityInterval
	byID      *domain.AvailabilityInterval
	getErr    error
	deletedID int64
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, iv *domain.AvailabilityInterval) (*domain.AvailabilityInterval, error) {
	out := *iv
	out.ID = 21
	out.CreatedAt = time.Now()
	return &out, nil
}

func (f *fakeAvailabilityRepo) GetByID(context.Context, int64, int64) (*domain.AvailabilityInterval, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.byID, nil
}

func (f *fakeAvailabilityRepo) ListInWindow(context.Context, int64, time.Time, time.Time) ([]*domain.AvailabilityInterval, error) {
	return f.existing, nil
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, _ int64, id int64) error {
	f.deletedID = id
	return nil
}

type fakeBookingRepo struct {
	blocking []*domain.Booking
}

func (f *fakeBookingRepo) ListBlockingInWindow(context.Context, int64, time.Time, time.Time) ([]*domain.Booking, error) {
	return f.blocking, nil
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

func newTestService(av *fakeAvailabilityRepo, bk *fakeBookingRepo, now time.Time) *Service {
	svc := NewService(av, bk, nopLogger{})
	svc.timeProvider = &fixedClock{now: now}
	return svc
}

func TestDeclare(t *testing.T) {
	now := utc(2025, 6, 9, 12, 0)

	t.Run("creates interval", func(t *testing.T) {
		svc := newTestService(&fakeAvailabilityRepo{}, &fakeBookingRepo{}, now)

		resp, err := svc.Declare(context.Background(), &models.DeclareIntervalRequest{
			CoachID:   7,
			StartTime: utc(2025, 6, 10, 9, 0),
			EndTime:   utc(2025, 6, 10, 12, 0),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(21), resp.ID)
		assert.Equal(t, utc(2025, 6, 10, 9, 0), resp.StartTime)
	})

	t.Run("rejects overlap with existing interval", func(t *testing.T) {
		av := &fakeAvailabilityRepo{existing: []*domain.AvailabilityInterval{
			{ID: 1, CoachID: 7, StartTime: utc(2025, 6, 10, 10, 0), EndTime: utc(2025, 6, 10, 14, 0)},
		}}
		svc := newTestService(av, &fakeBookingRepo{}, now)

		_, err := svc.Declare(context.Background(), &models.DeclareIntervalRequest{
			CoachID:   7,
			StartTime: utc(2025, 6, 10, 9, 0),
			EndTime:   utc(2025, 6, 10, 12, 0),
		})
		assert.ErrorIs(t, err, ErrIntervalOverlaps)
	})

	t.Run("allows touching interval", func(t *testing.T) {
		av := &fakeAvailabilityRepo{existing: []*domain.AvailabilityInterval{
			{ID: 1, CoachID: 7, StartTime: utc(2025, 6, 10, 12, 0), EndTime: utc(2025, 6, 10, 14, 0)},
		}}
		svc := newTestService(av, &fakeBookingRepo{}, now)

		_, err := svc.Declare(context.Background(), &models.DeclareIntervalRequest{
			CoachID:   7,
			StartTime: utc(2025, 6, 10, 9, 0),
			EndTime:   utc(2025, 6, 10, 12, 0),
		})
		assert.NoError(t, err)
	})

	t.Run("rejects invalid bounds", func(t *testing.T) {
		svc := newTestService(&fakeAvailabilityRepo{}, &fakeBookingRepo{}, now)

		tests := []struct {
			name    string
			req     models.DeclareIntervalRequest
			wantErr error
		}{
			{
				"inverted",
				models.DeclareIntervalRequest{CoachID: 7, StartTime: utc(2025, 6, 10, 12, 0), EndTime: utc(2025, 6, 10, 9, 0)},
				ErrInvalidInterval,
			},
			{
				"empty",
				models.DeclareIntervalRequest{CoachID: 7, StartTime: utc(2025, 6, 10, 9, 0), EndTime: utc(2025, 6, 10, 9, 0)},
				ErrInvalidInterval,
			},
			{
				"too long",
				models.DeclareIntervalRequest{CoachID: 7, StartTime: utc(2025, 6, 10, 6, 0), EndTime: utc(2025, 6, 10, 23, 0)},
				ErrInvalidInterval,
			},
			{
				"in the past",
				models.DeclareIntervalRequest{CoachID: 7, StartTime: utc(2025, 6, 8, 9, 0), EndTime: utc(2025, 6, 8, 12, 0)},
				ErrIntervalInPast,
			},
			{
				"zero coach",
				models.DeclareIntervalRequest{StartTime: utc(2025, 6, 10, 9, 0), EndTime: utc(2025, 6, 10, 12, 0)},
				ErrInvalidInput,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.Declare(context.Background(), &tt.req)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestWithdraw(t *testing.T) {
	now := utc(2025, 6, 9, 12, 0)
	interval := &domain.AvailabilityInterval{
		ID: 5, CoachID: 7,
		StartTime: utc(2025, 6, 10, 9, 0),
		EndTime:   utc(2025, 6, 10, 12, 0),
	}

	t.Run("deletes empty interval", func(t *testing.T) {
		av := &fakeAvailabilityRepo{byID: interval}
		svc := newTestService(av, &fakeBookingRepo{}, now)

		err := svc.Withdraw(context.Background(), 7, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), av.deletedID)
	})

	t.Run("rejects interval with confirmed bookings", func(t *testing.T) {
		bk := &fakeBookingRepo{blocking: []*domain.Booking{
			{ID: 9, CoachID: 7, StartTime: utc(2025, 6, 10, 10, 0), DurationMinutes: 60, Status: domain.StatusConfirmed},
		}}
		svc := newTestService(&fakeAvailabilityRepo{byID: interval}, bk, now)

		err := svc.Withdraw(context.Background(), 7, 5)
		assert.ErrorIs(t, err, ErrHasBookings)
	})

	t.Run("missing interval", func(t *testing.T) {
		av := &fakeAvailabilityRepo{getErr: availabilityRepo.ErrIntervalNotFound}
		svc := newTestService(av, &fakeBookingRepo{}, now)

		err := svc.Withdraw(context.Background(), 7, 5)
		assert.ErrorIs(t, err, ErrIntervalNotFound)
	})
}

func TestListForCoach(t *testing.T) {
	now := utc(2025, 6, 9, 12, 0)
	av := &fakeAvailabilityRepo{existing: []*domain.AvailabilityInterval{
		{ID: 1, CoachID: 7, StartTime: utc(2025, 6, 10, 9, 0), EndTime: utc(2025, 6, 10, 12, 0)},
	}}
	svc := newTestService(av, &fakeBookingRepo{}, now)

	resp, err := svc.ListForCoach(context.Background(), &models.ListIntervalsRequest{
		CoachID: 7,
		From:    utc(2025, 6, 10, 0, 0),
		To:      utc(2025, 6, 17, 0, 0),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Intervals, 1)

	_, err = svc.ListForCoach(context.Background(), &models.ListIntervalsRequest{
		CoachID: 7,
		From:    utc(2025, 6, 17, 0, 0),
		To:      utc(2025, 6, 10, 0, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
