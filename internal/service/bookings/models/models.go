package models

import (
	"errors"
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown booking status string.
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// CancelBookingRequest is a cancellation request.
type CancelBookingRequest struct {
	RequesterID        int64  `json:"requesterId"`
	CancellationReason string `json:"cancellationReason"`
}

// CompleteBookingRequest marks a finished lesson.
type CompleteBookingRequest struct {
	CoachID int64 `json:"coachId"`
}

// GetPlayerBookingsRequest lists a player's bookings.
type GetPlayerBookingsRequest struct {
	PlayerID int64   `json:"playerId"`
	Status   *string `json:"status,omitempty"`
}

// GetCoachBookingsRequest lists a coach's schedule with optional filters.
type GetCoachBookingsRequest struct {
	CoachID         int64      `json:"coachId"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter converts the request into a domain filter.
func (r *GetCoachBookingsRequest) ToDomainFilter() (domain.CoachBookingsFilter, error) {
	filter := domain.CoachBookingsFilter{
		CoachID:         r.CoachID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse is the booking DTO.
type BookingResponse struct {
	ID              int64     `json:"id"`
	PlayerID        int64     `json:"playerId"`
	CoachID         int64     `json:"coachId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	LessonType      string    `json:"lessonType"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

// FromDomainBooking converts a domain model into a DTO.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		PlayerID:           b.PlayerID,
		CoachID:            b.CoachID,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime(),
		DurationMinutes:    b.DurationMinutes,
		LessonType:         b.LessonType,
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList converts a list of domain models into a DTO.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus converts a string into a validated status.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
