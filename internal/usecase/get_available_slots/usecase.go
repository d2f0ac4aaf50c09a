package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/slots"
)

// UseCase computes the bookable slots of a coach for a bounded look-ahead
// window. It is the single slot-derivation path: the booking page, the
// reschedule picker and the public slot API all go through Execute.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute computes the day-grouped bookable slots.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: coach=%d, from=%s, days=%d, duration=%d",
		req.CoachID, req.From.Format(domain.DateFormat), req.Days, req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}

	days := req.Days
	if days == 0 {
		days = domain.DefaultWindowDays
	}

	// The window opens at viewer-local midnight of the first day and spans
	// the requested number of days. AddDate keeps the arithmetic correct
	// across DST transitions.
	windowStart := time.Date(req.From.Year(), req.From.Month(), req.From.Day(), 0, 0, 0, 0, loc)
	windowEnd := windowStart.AddDate(0, 0, days)

	// Past instants are never bookable; clamp the window to now. The
	// engine re-snaps the clamped, off-grid start upward.
	now := uc.timeProvider.Now()
	if now.After(windowStart) {
		windowStart = now
	}
	if !windowEnd.After(windowStart) {
		uc.logger.Warn("GetAvailableSlots: window [%s, %s) is empty for coach=%d",
			windowStart, windowEnd, req.CoachID)
		return nil, ErrInvalidWindow
	}

	availability, err := uc.availabilityRepo.ListInWindow(ctx, req.CoachID, windowStart, windowEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to fetch availability for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to fetch availability: %v", ErrInternal, err)
	}

	booked, err := uc.bookingRepo.ListBlockingInWindow(ctx, req.CoachID, windowStart, windowEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to fetch bookings for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: failed to fetch bookings: %v", ErrInternal, err)
	}

	computed, err := slots.ComputeBookableSlots(
		slots.SlotRequest{
			WindowStart:     windowStart,
			WindowEnd:       windowEnd,
			DurationMinutes: req.DurationMinutes,
			GridMinutes:     domain.GridMinutes,
		},
		toEngineAvailability(availability),
		toEngineBooked(booked),
	)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidDuration):
			uc.logger.Warn("GetAvailableSlots: duration %d rejected by engine", req.DurationMinutes)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		case errors.Is(err, slots.ErrInvalidWindow):
			uc.logger.Warn("GetAvailableSlots: window rejected by engine: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		default:
			uc.logger.Error("GetAvailableSlots: slot computation failed for coach=%d: %v", req.CoachID, err)
			return nil, fmt.Errorf("%w: slot computation failed: %v", ErrInternal, err)
		}
	}

	grouped := slots.GroupByDay(computed, loc)

	uc.logger.Info("GetAvailableSlots: computed %d slots over %d days for coach=%d",
		len(computed), len(grouped), req.CoachID)

	return &Response{
		CoachID:         req.CoachID,
		DurationMinutes: req.DurationMinutes,
		WindowStart:     windowStart,
		WindowEnd:       windowEnd,
		Days:            grouped,
	}, nil
}

func toEngineAvailability(intervals []*domain.AvailabilityInterval) []slots.AvailabilityInterval {
	out := make([]slots.AvailabilityInterval, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, slots.AvailabilityInterval{
			Start: iv.StartTime,
			End:   iv.EndTime,
		})
	}
	return out
}

func toEngineBooked(bookings []*domain.Booking) []slots.BookedInterval {
	out := make([]slots.BookedInterval, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, slots.BookedInterval{
			Start:  b.StartTime,
			End:    b.EndTime(),
			Status: b.Status,
		})
	}
	return out
}
