package get_player_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/bookings"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/bookings/models"
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/ptr"
)

const (
	msgInvalidPlayerID = "invalid player ID"
	msgInvalidStatus   = "invalid status filter"
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

// Handle GET /api/v1/players/{playerId}/bookings
// Query params: status (optional).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	playerID, err := strconv.ParseInt(vars["playerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /players/{id}/bookings - Invalid player ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlayerID)
		return
	}

	req := &models.GetPlayerBookingsRequest{PlayerID: playerID}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = ptr.Ptr(statusStr)
	}

	result, err := h.service.GetPlayerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /players/{id}/bookings - Invalid status: player_id=%d, error=%v", playerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /players/{id}/bookings - Failed to list bookings: player_id=%d, error=%v", playerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /players/{id}/bookings - Bookings listed: player_id=%d, count=%d", playerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
