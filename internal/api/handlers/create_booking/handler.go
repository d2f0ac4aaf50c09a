package create_booking

import (
	"errors"
	"net/http"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers"
	createBooking "github.com/ethanriley28/baseball-lessons-app-sub000/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "invalid request body"
	msgInvalidDuration       = "invalid or unsupported lesson duration"
	msgInvalidStartTime      = "start time must lie on the 30-minute grid"
	msgStartTimeInPast       = "start time is in the past"
	msgTooFarInFuture        = "start time is too far in the future"
	msgOutsideAvailability   = "slot is outside the coach's availability"
	msgSlotNoLongerAvailable = "slot is no longer available"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNoLongerAvailable):
			h.logger.Warn("POST /bookings - Slot no longer available: player_id=%d, coach_id=%d", req.PlayerID, req.CoachID)
			handlers.RespondConflict(w, msgSlotNoLongerAvailable)

		case errors.Is(err, createBooking.ErrOutsideAvailability):
			h.logger.Warn("POST /bookings - Outside availability: player_id=%d, coach_id=%d", req.PlayerID, req.CoachID)
			handlers.RespondBadRequest(w, msgOutsideAvailability)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: player_id=%d, duration=%d", req.PlayerID, req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidStartTime):
			h.logger.Warn("POST /bookings - Off-grid start time: player_id=%d, start=%s", req.PlayerID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidStartTime)

		case errors.Is(err, createBooking.ErrStartTimeInPast):
			h.logger.Warn("POST /bookings - Start time in past: player_id=%d, start=%s", req.PlayerID, req.StartTime)
			handlers.RespondBadRequest(w, msgStartTimeInPast)

		case errors.Is(err, createBooking.ErrTooFarInFuture):
			h.logger.Warn("POST /bookings - Start time too far ahead: player_id=%d, start=%s", req.PlayerID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooFarInFuture)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: player_id=%d, error=%v", req.PlayerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: player_id=%d, coach_id=%d, error=%v",
				req.PlayerID, req.CoachID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, player_id=%d, coach_id=%d",
		result.ID, req.PlayerID, req.CoachID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
