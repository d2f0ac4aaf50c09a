package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	bookingRepo "github.com/ethanriley28/baseball-lessons-app-sub000/internal/infra/storage/booking"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/slots"
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/txmanager"
)

// UseCase commits a booking. The slot shown to the player is recomputed
// against current availability and confirmed bookings inside a serializable
// transaction, so a slot taken between display and commit is rejected
// rather than double-booked.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute validates the request and creates a confirmed booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: player=%d, coach=%d, start=%s, duration=%d",
		req.PlayerID, req.CoachID, req.StartTime.UTC().Format(time.RFC3339), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateStartTime(req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: start time validation failed: %v", err)
		return nil, err
	}

	start := req.StartTime.UTC()
	end := start.Add(time.Duration(req.DurationMinutes) * time.Minute)

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// The lesson must fit inside one declared availability interval;
		// back-to-back intervals are not stitched together.
		intervals, err := uc.availabilityRepo.ListInWindow(txCtx, req.CoachID, start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to fetch availability for coach=%d: %v", req.CoachID, err)
			return fmt.Errorf("%w: failed to fetch availability: %v", ErrInternal, err)
		}
		if !coveredBySingleInterval(intervals, start, end) {
			uc.logger.Warn("CreateBooking: [%s, %s) not covered by coach=%d availability",
				start.Format(time.RFC3339), end.Format(time.RFC3339), req.CoachID)
			return ErrOutsideAvailability
		}

		// Locked re-read of confirmed bookings touching the slot (FOR UPDATE
		// inside the transaction).
		blocking, err := uc.bookingRepo.ListBlockingInWindow(txCtx, req.CoachID, start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to fetch bookings for coach=%d: %v", req.CoachID, err)
			return fmt.Errorf("%w: failed to fetch bookings: %v", ErrInternal, err)
		}
		for _, b := range blocking {
			if slots.OverlapsBooking(b, start, end) {
				uc.logger.Warn("CreateBooking: slot [%s, %s) conflicts with booking id=%d",
					start.Format(time.RFC3339), end.Format(time.RFC3339), b.ID)
				return ErrSlotNoLongerAvailable
			}
		}

		booking := &domain.Booking{
			PlayerID:        req.PlayerID,
			CoachID:         req.CoachID,
			StartTime:       start,
			DurationMinutes: req.DurationMinutes,
			LessonType:      req.LessonType,
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// Exclusion constraint fired: a concurrent commit won the slot.
				return ErrSlotNoLongerAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization retries exhausted for coach=%d, start=%s",
				req.CoachID, start.Format(time.RFC3339))
			return nil, ErrSlotNoLongerAvailable
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return toResponse(result), nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		PlayerID:        b.PlayerID,
		CoachID:         b.CoachID,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime(),
		DurationMinutes: b.DurationMinutes,
		LessonType:      b.LessonType,
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
