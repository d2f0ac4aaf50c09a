package get_coach_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/bookings"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/bookings/models"
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/ptr"
)

const (
	msgInvalidCoachID = "invalid coach ID"
	msgInvalidFrom    = "invalid from date, expected YYYY-MM-DD"
	msgInvalidTo      = "invalid to date, expected YYYY-MM-DD"
	msgInvalidFilter  = "invalid filter"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}/bookings
// Query params: from, to (YYYY-MM-DD), status, includeInactive.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/bookings - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	query := r.URL.Query()
	req := &models.GetCoachBookingsRequest{CoachID: coachID}

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/bookings - Invalid from=%s: %v", fromStr, err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.StartDate = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/bookings - Invalid to=%s: %v", toStr, err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.EndDate = &to
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = ptr.Ptr(statusStr)
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.GetCoachBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /coaches/{id}/bookings - Invalid filter: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /coaches/{id}/bookings - Failed to list bookings: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coaches/{id}/bookings - Bookings listed: coach_id=%d, count=%d", coachID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
