package response

import (
	"time"

	"estate-marketplace/internal/data/entity"
)

type BookingResponse struct {
	ID              string                 `json:"id"`
	ServiceID       string                 `json:"service_id"`
	ServiceTitle    string                 `json:"service_title,omitempty"`
	SeekerID        string                 `json:"seeker_id"`
	ProviderID      string                 `json:"provider_id"`
	ScheduledAt     time.Time              `json:"scheduled_at"`
	DurationHours   float64                `json:"duration_hours"`
	Status          entity.BookingStatus   `json:"status"`
	TotalPrice      string                 `json:"total_price"`
	PaymentStatus   entity.PaymentStatus   `json:"payment_status"`
	Notes           *string                `json:"notes,omitempty"`
	ContactPhone    *string                `json:"contact_phone,omitempty"`
	ServiceLocation *string                `json:"service_location,omitempty"`
	Actions         []entity.Action        `json:"actions"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// BookingToResponse renders a booking with the actions the viewer may take,
// so the UI renders only buttons the lifecycle would accept.
func BookingToResponse(b *entity.Booking, serviceTitle string, actions entity.ActionSet) BookingResponse {
	return BookingResponse{
		ID:              b.ID.String(),
		ServiceID:       b.ServiceID.String(),
		ServiceTitle:    serviceTitle,
		SeekerID:        b.SeekerID.String(),
		ProviderID:      b.ProviderID.String(),
		ScheduledAt:     b.ScheduledAt,
		DurationHours:   b.DurationHours,
		Status:          b.Status,
		TotalPrice:      b.TotalPrice.StringFixed(2),
		PaymentStatus:   b.PaymentStatus,
		Notes:           b.Notes,
		ContactPhone:    b.ContactPhone,
		ServiceLocation: b.ServiceLocation,
		Actions:         actions.List(),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
