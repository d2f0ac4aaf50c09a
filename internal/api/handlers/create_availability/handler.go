package create_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/availability"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/availability/models"
)

const (
	msgInvalidCoachID     = "invalid coach ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInterval    = "invalid availability interval"
	msgIntervalInPast     = "availability interval is in the past"
	msgIntervalOverlaps   = "availability interval overlaps an existing one"
)

// CreateAvailabilityRequest is the HTTP request model.
type CreateAvailabilityRequest struct {
	StartTime time.Time `json:"startTime"` // RFC 3339
	EndTime   time.Time `json:"endTime"`   // RFC 3339
}

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/coaches/{coachId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /coaches/{id}/availability - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	var req CreateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coaches/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Declare(r.Context(), &models.DeclareIntervalRequest{
		CoachID:   coachID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrIntervalOverlaps):
			h.logger.Warn("POST /coaches/{id}/availability - Interval overlaps: coach_id=%d", coachID)
			handlers.RespondConflict(w, msgIntervalOverlaps)

		case errors.Is(err, availability.ErrIntervalInPast):
			h.logger.Warn("POST /coaches/{id}/availability - Interval in past: coach_id=%d", coachID)
			handlers.RespondBadRequest(w, msgIntervalInPast)

		case errors.Is(err, availability.ErrInvalidInterval), errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /coaches/{id}/availability - Invalid interval: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("POST /coaches/{id}/availability - Failed to declare: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coaches/{id}/availability - Interval declared: coach_id=%d, interval_id=%d", coachID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
