package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers"
	rescheduleBooking "github.com/ethanriley28/baseball-lessons-app-sub000/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID      = "invalid booking ID"
	msgInvalidRequestBody    = "invalid request body"
	msgNotFound              = "booking not found"
	msgForbidden             = "access denied"
	msgCannotReschedule      = "booking cannot be rescheduled"
	msgInvalidDuration       = "invalid or unsupported lesson duration"
	msgInvalidStartTime      = "start time must lie on the 30-minute grid"
	msgStartTimeInPast       = "start time is in the past"
	msgTooFarInFuture        = "start time is too far in the future"
	msgOutsideAvailability   = "slot is outside the coach's availability"
	msgSlotNoLongerAvailable = "slot is no longer available"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Access denied: booking_id=%d, player_id=%d",
				bookingID, req.PlayerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrCannotReschedule):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Cannot reschedule: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotReschedule)

		case errors.Is(err, rescheduleBooking.ErrSlotNoLongerAvailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot no longer available: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotNoLongerAvailable)

		case errors.Is(err, rescheduleBooking.ErrOutsideAvailability):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Outside availability: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgOutsideAvailability)

		case errors.Is(err, rescheduleBooking.ErrInvalidDuration):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid duration: booking_id=%d, duration=%d",
				bookingID, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, rescheduleBooking.ErrInvalidStartTime):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Off-grid start time: booking_id=%d, start=%s",
				bookingID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		case errors.Is(err, rescheduleBooking.ErrStartTimeInPast):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Start time in past: booking_id=%d, start=%s",
				bookingID, req.StartTime)
			handlers.RespondBadRequest(w, msgStartTimeInPast)

		case errors.Is(err, rescheduleBooking.ErrTooFarInFuture):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Start time too far ahead: booking_id=%d, start=%s",
				bookingID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooFarInFuture)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking moved: booking_id=%d, player_id=%d",
		result.ID, req.PlayerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
