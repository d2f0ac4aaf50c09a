package cancel_booking

import "github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/bookings/models"

// CancelBookingRequest is the HTTP request model.
type CancelBookingRequest struct {
	RequesterID        int64  `json:"requesterId"`
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		RequesterID:        r.RequesterID,
		CancellationReason: r.CancellationReason,
	}
}
