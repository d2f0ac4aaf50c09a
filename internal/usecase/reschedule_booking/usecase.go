package reschedule_booking

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

// UseCase moves a confirmed booking to a new slot. The new slot is validated
// the same way a fresh booking is, except that the booking being moved never
// conflicts with itself.
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

// Execute validates the request and moves the booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, player=%d, start=%s, duration=%d",
		req.BookingID, req.PlayerID, req.StartTime.UTC().Format(time.RFC3339), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateStartTime(req.StartTime, now); err != nil {
		uc.logger.Warn("RescheduleBooking: start time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.PlayerID != req.PlayerID {
			uc.logger.Warn("RescheduleBooking: booking id=%d belongs to player=%d, not player=%d",
				req.BookingID, booking.PlayerID, req.PlayerID)
			return ErrAccessDenied
		}

		if !booking.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d has status %s", req.BookingID, booking.Status)
			return ErrCannotReschedule
		}

		duration := req.DurationMinutes
		if duration == 0 {
			duration = booking.DurationMinutes
		}

		start := req.StartTime.UTC()
		end := start.Add(time.Duration(duration) * time.Minute)

		intervals, err := uc.availabilityRepo.ListInWindow(txCtx, booking.CoachID, start, end)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to fetch availability for coach=%d: %v", booking.CoachID, err)
			return fmt.Errorf("%w: failed to fetch availability: %v", ErrInternal, err)
		}
		if !coveredBySingleInterval(intervals, start, end) {
			uc.logger.Warn("RescheduleBooking: [%s, %s) not covered by coach=%d availability",
				start.Format(time.RFC3339), end.Format(time.RFC3339), booking.CoachID)
			return ErrOutsideAvailability
		}

		blocking, err := uc.bookingRepo.ListBlockingInWindow(txCtx, booking.CoachID, start, end)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to fetch bookings for coach=%d: %v", booking.CoachID, err)
			return fmt.Errorf("%w: failed to fetch bookings: %v", ErrInternal, err)
		}
		for _, b := range blocking {
			if b.ID == booking.ID {
				continue
			}
			if slots.OverlapsBooking(b, start, end) {
				uc.logger.Warn("RescheduleBooking: slot [%s, %s) conflicts with booking id=%d",
					start.Format(time.RFC3339), end.Format(time.RFC3339), b.ID)
				return ErrSlotNoLongerAvailable
			}
		}

		updated, err := uc.bookingRepo.UpdateTimes(txCtx, booking.ID, start, duration)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotNoLongerAvailable
			}
			uc.logger.Error("RescheduleBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("RescheduleBooking: serialization retries exhausted for booking=%d", req.BookingID)
			return nil, ErrSlotNoLongerAvailable
		}
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully moved booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		PlayerID:        result.PlayerID,
		CoachID:         result.CoachID,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime(),
		DurationMinutes: result.DurationMinutes,
		LessonType:      result.LessonType,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
