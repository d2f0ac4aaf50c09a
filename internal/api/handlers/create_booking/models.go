package create_booking

import (
	"time"

	createBooking "github.com/ethanriley28/baseball-lessons-app-sub000/internal/usecase/create_booking"
)

// CreateBookingRequest is the HTTP request model.
type CreateBookingRequest struct {
	PlayerID        int64     `json:"playerId"`
	CoachID         int64     `json:"coachId"`
	StartTime       time.Time `json:"startTime"` // RFC 3339
	DurationMinutes int       `json:"durationMinutes"`
	LessonType      string    `json:"lessonType"`
	Notes           *string   `json:"notes,omitempty"`
}

// BookingResponse is the HTTP response model.
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
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		PlayerID:        r.PlayerID,
		CoachID:         r.CoachID,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		LessonType:      r.LessonType,
		Notes:           r.Notes,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		PlayerID:        resp.PlayerID,
		CoachID:         resp.CoachID,
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		DurationMinutes: resp.DurationMinutes,
		LessonType:      resp.LessonType,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
