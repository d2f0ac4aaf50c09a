package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	getAvailableSlots "github.com/ethanriley28/baseball-lessons-app-sub000/internal/usecase/get_available_slots"
)

const (
	msgInvalidCoachID  = "invalid coach ID"
	msgMissingFrom     = "from date is required"
	msgInvalidFrom     = "invalid from date, expected YYYY-MM-DD"
	msgInvalidDays     = "invalid days parameter"
	msgMissingDuration = "duration is required"
	msgInvalidDuration = "invalid or unsupported lesson duration"
	msgInvalidTimezone = "invalid tz parameter"
	msgInvalidWindow   = "requested window is empty or entirely in the past"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/coaches/{coachId}/available-slots
// Query params: from (required, YYYY-MM-DD), duration (required, minutes),
// days (optional), tz (optional IANA name, grouping only).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/available-slots - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	query := r.URL.Query()

	fromStr := query.Get("from")
	if fromStr == "" {
		h.logger.Warn("GET /coaches/{id}/available-slots - Missing from date")
		handlers.RespondBadRequest(w, msgMissingFrom)
		return
	}

	loc := time.UTC
	if tzStr := query.Get("tz"); tzStr != "" {
		loc, err = time.LoadLocation(tzStr)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/available-slots - Invalid tz=%s: %v", tzStr, err)
			handlers.RespondBadRequest(w, msgInvalidTimezone)
			return
		}
	}

	from, err := time.ParseInLocation(domain.DateFormat, fromStr, loc)
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/available-slots - Invalid from=%s: %v", fromStr, err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	days := 0
	if daysStr := query.Get("days"); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil {
			h.logger.Warn("GET /coaches/{id}/available-slots - Invalid days=%s: %v", daysStr, err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
	}

	durationStr := query.Get("duration")
	if durationStr == "" {
		h.logger.Warn("GET /coaches/{id}/available-slots - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}
	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /coaches/{id}/available-slots - Invalid duration=%s: %v", durationStr, err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		CoachID:         coachID,
		From:            from,
		Days:            days,
		DurationMinutes: duration,
		Location:        loc,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /coaches/{id}/available-slots - Unsupported duration: coach_id=%d, duration=%d", coachID, duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidWindow):
			h.logger.Warn("GET /coaches/{id}/available-slots - Invalid window: coach_id=%d, from=%s, days=%d", coachID, fromStr, days)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /coaches/{id}/available-slots - Invalid input: coach_id=%d, error=%v", coachID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /coaches/{id}/available-slots - Failed to compute slots: coach_id=%d, error=%v", coachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /coaches/{id}/available-slots - Slots computed: coach_id=%d, days=%d", coachID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
