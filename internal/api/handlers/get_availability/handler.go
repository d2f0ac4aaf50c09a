package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/availability"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/availability/models"
)

const (
	msgInvalidCoachID = "invalid coach ID"
	msgInvalidFrom    = "invalid from date, expected YYYY-MM-DD"
	msgInvalidTo      = "invalid to date, expected YYYY-MM-DD"
	msgInvalidWindow  = "window must be non-empty"
)

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

// Handle GET /api/v1/coaches/{coachId}/availability
// Query params: from, to (YYYY-MM-DD); default is the standard look-ahead
// window starting today.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/availability - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	query := r.URL.Query()

	from := time.Now().UTC().Truncate(24 * time.Hour)
	if fromStr := query.Get("from"); fromStr != "" {
		from, err = time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/availability - Invalid from=%s: %v", fromStr, err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
	}

	to := from.AddDate(0, 0, domain.DefaultWindowDays)
	if toStr := query.Get("to"); toStr != "" {
		to, err = time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/availability - Invalid to=%s: %v", toStr, err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
	}

	result, err := h.service.ListForCoach(r.Context(), &models.ListIntervalsRequest{
		CoachID: coachID,
		From:    from,
		To:      to,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /coaches/{id}/availability - Invalid window: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /coaches/{id}/availability - Failed to list intervals: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coaches/{id}/availability - Intervals listed: coach_id=%d, count=%d",
		coachID, len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, result)
}
