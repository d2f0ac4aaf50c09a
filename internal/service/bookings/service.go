package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	bookingRepo "github.com/ethanriley28/baseball-lessons-app-sub000/internal/infra/storage/booking"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/bookings/models"
)

// Service reads and mutates existing bookings. Creating and moving bookings
// goes through the dedicated use cases; this service covers the rest of the
// booking lifecycle.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a bookings service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID fetches a booking. The requester must be the player or the coach
// of the booking.
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for requester=%d", id, requesterID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := checkAccess(booking, requesterID); err != nil {
		s.logger.Warn("GetByID: access denied for requester=%d to booking id=%d", requesterID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetPlayerBookings lists a player's booking history, optionally filtered
// by status.
func (s *Service) GetPlayerBookings(ctx context.Context, req *models.GetPlayerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetPlayerBookings: fetching bookings for player=%d, status=%v", req.PlayerID, req.Status)

	if req.PlayerID <= 0 {
		return nil, fmt.Errorf("%w: playerID must be positive", ErrInvalidInput)
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetPlayerBookings: invalid status=%s for player=%d", *req.Status, req.PlayerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	list, err := s.bookingRepo.ListByPlayer(ctx, req.PlayerID, domainStatus)
	if err != nil {
		s.logger.Error("GetPlayerBookings: repository error for player=%d: %v", req.PlayerID, err)
		return nil, fmt.Errorf("%w: GetPlayerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPlayerBookings: fetched %d bookings for player=%d", len(list), req.PlayerID)
	return models.FromDomainBookingList(list), nil
}

// GetCoachBookings lists a coach's schedule with optional date and status
// filters.
func (s *Service) GetCoachBookings(ctx context.Context, req *models.GetCoachBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCoachBookings: fetching bookings for coach=%d", req.CoachID)

	if req.CoachID <= 0 {
		return nil, fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate precedes startDate", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCoachBookings: invalid filter for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	list, err := s.bookingRepo.ListByCoach(ctx, filter)
	if err != nil {
		s.logger.Error("GetCoachBookings: repository error for coach=%d: %v", req.CoachID, err)
		return nil, fmt.Errorf("%w: GetCoachBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCoachBookings: fetched %d bookings for coach=%d", len(list), req.CoachID)
	return models.FromDomainBookingList(list), nil
}

// Cancel cancels a confirmed booking. Either side of the lesson may cancel.
// Cancelling frees the slot for other players immediately.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by requester=%d", bookingID, req.RequesterID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	if err := checkAccess(booking, req.RequesterID); err != nil {
		s.logger.Warn("Cancel: access denied for requester=%d to booking id=%d", req.RequesterID, bookingID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d vanished during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Complete marks a past lesson completed. Only the coach of the booking may
// complete it, and only after the lesson has ended.
func (s *Service) Complete(ctx context.Context, bookingID int64, req *models.CompleteBookingRequest) error {
	s.logger.Info("Complete: completing booking id=%d by coach=%d", bookingID, req.CoachID)

	booking, err := s.getBooking(ctx, "Complete", bookingID)
	if err != nil {
		return err
	}

	if booking.CoachID != req.CoachID {
		s.logger.Warn("Complete: coach=%d is not the coach of booking id=%d", req.CoachID, bookingID)
		return ErrAccessDenied
	}

	if booking.Status != domain.StatusConfirmed {
		s.logger.Warn("Complete: booking id=%d has status %s", bookingID, booking.Status)
		return ErrCannotComplete
	}

	if s.timeProvider.Now().Before(booking.EndTime()) {
		s.logger.Warn("Complete: booking id=%d has not ended yet", bookingID)
		return ErrCannotComplete
	}

	if err := s.bookingRepo.Complete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed booking id=%d", bookingID)
	return nil
}

func (s *Service) getBooking(ctx context.Context, method string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}

// checkAccess allows the player and the coach of a booking.
func checkAccess(booking *domain.Booking, requesterID int64) error {
	if booking.PlayerID == requesterID || booking.CoachID == requesterID {
		return nil
	}
	return ErrAccessDenied
}
