package delete_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/availability"
)

const (
	msgInvalidCoachID    = "invalid coach ID"
	msgInvalidIntervalID = "invalid availability ID"
	msgNotFound          = "availability interval not found"
	msgHasBookings       = "availability interval still has confirmed bookings"
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

// Handle DELETE /api/v1/coaches/{coachId}/availability/{availabilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	coachID, err := strconv.ParseInt(vars["coachId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/availability/{id} - Invalid coach ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoachID)
		return
	}

	intervalID, err := strconv.ParseInt(vars["availabilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /coaches/{id}/availability/{id} - Invalid interval ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervalID)
		return
	}

	if err := h.service.Withdraw(r.Context(), coachID, intervalID); err != nil {
		switch {
		case errors.Is(err, availability.ErrIntervalNotFound):
			h.logger.Warn("DELETE /coaches/{id}/availability/{id} - Not found: coach_id=%d, interval_id=%d",
				coachID, intervalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrHasBookings):
			h.logger.Warn("DELETE /coaches/{id}/availability/{id} - Has bookings: coach_id=%d, interval_id=%d",
				coachID, intervalID)
			handlers.RespondConflict(w, msgHasBookings)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("DELETE /coaches/{id}/availability/{id} - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("DELETE /coaches/{id}/availability/{id} - Failed to withdraw: coach_id=%d, interval_id=%d, error=%v",
				coachID, intervalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /coaches/{id}/availability/{id} - Interval withdrawn: coach_id=%d, interval_id=%d",
		coachID, intervalID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
