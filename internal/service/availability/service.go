package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	availabilityRepo "github.com/ethanriley28/baseball-lessons-app-sub000/internal/infra/storage/availability"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/availability/models"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/slots"
)

// Service manages a coach's declared availability. Declared intervals are
// the raw material the slot engine carves bookable slots out of; they are
// never merged or split on write.
type Service struct {
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService creates an availability service.
func NewService(
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Declare adds an availability interval for a coach. Overlapping an already
// declared interval is rejected so the stored intervals stay disjoint.
func (s *Service) Declare(ctx context.Context, req *models.DeclareIntervalRequest) (*models.IntervalResponse, error) {
	s.logger.Info("Declare: coach=%d, start=%s, end=%s",
		req.CoachID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	if err := validateDeclareRequest(req, s.timeProvider.Now()); err != nil {
		s.logger.Warn("Declare: validation failed: %v", err)
		return nil, err
	}

	start := req.StartTime.UTC()
	end := req.EndTime.UTC()

	existing, err := s.availabilityRepo.ListInWindow(ctx, req.CoachID, start, end)
	if err != nil {
		s.logger.Error("Declare: repository error for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: Declare - repository error: %v", ErrInternal, err)
	}
	for _, iv := range existing {
		if slots.Overlaps(start, end, iv.StartTime, iv.EndTime) {
			s.logger.Warn("Declare: [%s, %s) overlaps interval id=%d for coach=%d",
				start.Format(time.RFC3339), end.Format(time.RFC3339), iv.ID, req.CoachID)
			return nil, ErrIntervalOverlaps
		}
	}

	created, err := s.availabilityRepo.Create(ctx, &domain.AvailabilityInterval{
		CoachID:   req.CoachID,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		s.logger.Error("Declare: failed to create interval for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: Declare - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Declare: created interval id=%d for coach=%d", created.ID, created.CoachID)
	return models.FromDomainInterval(created), nil
}

// Withdraw removes a declared interval. An interval still holding confirmed
// bookings cannot be withdrawn; the coach has to cancel the lessons first.
func (s *Service) Withdraw(ctx context.Context, coachID, intervalID int64) error {
	s.logger.Info("Withdraw: coach=%d, interval=%d", coachID, intervalID)

	if coachID <= 0 || intervalID <= 0 {
		return fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	interval, err := s.availabilityRepo.GetByID(ctx, coachID, intervalID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrIntervalNotFound) {
			s.logger.Warn("Withdraw: interval id=%d not found for coach=%d", intervalID, coachID)
			return ErrIntervalNotFound
		}
		s.logger.Error("Withdraw: repository error for interval id=%d: %v", intervalID, err)
		return fmt.Errorf("%w: Withdraw - repository error: %v", ErrInternal, err)
	}

	blocking, err := s.bookingRepo.ListBlockingInWindow(ctx, coachID, interval.StartTime, interval.EndTime)
	if err != nil {
		s.logger.Error("Withdraw: failed to fetch bookings for coach=%d: %v", coachID, err)
		return fmt.Errorf("%w: Withdraw - repository error: %v", ErrInternal, err)
	}
	if len(blocking) > 0 {
		s.logger.Warn("Withdraw: interval id=%d holds %d confirmed bookings", intervalID, len(blocking))
		return ErrHasBookings
	}

	if err := s.availabilityRepo.Delete(ctx, coachID, intervalID); err != nil {
		if errors.Is(err, availabilityRepo.ErrIntervalNotFound) {
			return ErrIntervalNotFound
		}
		s.logger.Error("Withdraw: failed to delete interval id=%d: %v", intervalID, err)
		return fmt.Errorf("%w: Withdraw - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Withdraw: deleted interval id=%d for coach=%d", intervalID, coachID)
	return nil
}

// ListForCoach returns a coach's declared intervals overlapping a window.
func (s *Service) ListForCoach(ctx context.Context, req *models.ListIntervalsRequest) (*models.IntervalListResponse, error) {
	s.logger.Info("ListForCoach: coach=%d, from=%s, to=%s",
		req.CoachID, req.From.Format(time.RFC3339), req.To.Format(time.RFC3339))

	if req.CoachID <= 0 {
		return nil, fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}
	if req.From.IsZero() || req.To.IsZero() || !req.To.After(req.From) {
		return nil, fmt.Errorf("%w: window must be non-empty", ErrInvalidInput)
	}

	intervals, err := s.availabilityRepo.ListInWindow(ctx, req.CoachID, req.From, req.To)
	if err != nil {
		s.logger.Error("ListForCoach: repository error for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: ListForCoach - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForCoach: fetched %d intervals for coach=%d", len(intervals), req.CoachID)
	return models.FromDomainIntervalList(intervals), nil
}

func validateDeclareRequest(req *models.DeclareIntervalRequest, now time.Time) error {
	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInterval)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInterval)
	}

	if req.EndTime.Sub(req.StartTime) > time.Duration(domain.MaxIntervalHours)*time.Hour {
		return fmt.Errorf("%w: interval exceeds %d hours", ErrInvalidInterval, domain.MaxIntervalHours)
	}

	if req.EndTime.Before(now) {
		return fmt.Errorf("%w: interval ends at %s", ErrIntervalInPast, req.EndTime.UTC().Format(time.RFC3339))
	}

	return nil
}
