package models

import (
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
)

// Request models

// DeclareIntervalRequest declares a block of coaching time.
type DeclareIntervalRequest struct {
	CoachID   int64     `json:"coachId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// ListIntervalsRequest lists a coach's declared intervals in a window.
type ListIntervalsRequest struct {
	CoachID int64     `json:"coachId"`
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
}

// Response models

// IntervalResponse is the availability interval DTO.
type IntervalResponse struct {
	ID        int64     `json:"id"`
	CoachID   int64     `json:"coachId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
}

// IntervalListResponse is a list of intervals.
type IntervalListResponse struct {
	Intervals []IntervalResponse `json:"intervals"`
}

// Conversion helpers

// FromDomainInterval converts a domain model into a DTO.
func FromDomainInterval(iv *domain.AvailabilityInterval) *IntervalResponse {
	if iv == nil {
		return nil
	}
	return &IntervalResponse{
		ID:        iv.ID,
		CoachID:   iv.CoachID,
		StartTime: iv.StartTime,
		EndTime:   iv.EndTime,
		CreatedAt: iv.CreatedAt,
	}
}

// FromDomainIntervalList converts a list of domain models into a DTO.
func FromDomainIntervalList(intervals []*domain.AvailabilityInterval) *IntervalListResponse {
	resp := &IntervalListResponse{
		Intervals: make([]IntervalResponse, 0, len(intervals)),
	}
	for _, iv := range intervals {
		if ivResp := FromDomainInterval(iv); ivResp != nil {
			resp.Intervals = append(resp.Intervals, *ivResp)
		}
	}
	return resp
}
