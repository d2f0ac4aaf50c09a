package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "invalid booking ID"
	msgMissingRequesterID = "requesterId is required"
	msgInvalidRequesterID = "invalid requesterId"
	msgNotFound           = "booking not found"
	msgForbidden          = "access denied"
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

// Handle GET /api/v1/bookings/{bookingId}
// Query params: requesterId (required) - the player or coach asking.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	requesterStr := r.URL.Query().Get("requesterId")
	if requesterStr == "" {
		h.logger.Warn("GET /bookings/{id} - Missing requester ID: booking_id=%d", bookingID)
		handlers.RespondBadRequest(w, msgMissingRequesterID)
		return
	}
	requesterID, err := strconv.ParseInt(requesterStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid requester ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequesterID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id} - Access denied: booking_id=%d, requester_id=%d", bookingID, requesterID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved: booking_id=%d, requester_id=%d", bookingID, requesterID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
