package response

import (
	"time"

	"estate-marketplace/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	ServiceID string    `json:"service_id"`
	SeekerID  string    `json:"seeker_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ReviewToResponse(r *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID.String(),
		BookingID: r.BookingID.String(),
		ServiceID: r.ServiceID.String(),
		SeekerID:  r.SeekerID.String(),
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
