package request

type CreateBookingRequest struct {
	ServiceID       string  `json:"service_id" validate:"required,uuid4"`
	ScheduledAt     string  `json:"scheduled_at" validate:"required"` // RFC3339
	DurationHours   float64 `json:"duration_hours" validate:"required,gt=0"`
	Notes           *string `json:"notes,omitempty"`
	ContactPhone    *string `json:"contact_phone,omitempty"`
	ServiceLocation *string `json:"service_location,omitempty"`
}

// TransitionBookingRequest is the body of the status update call. A reason
// must accompany a rejection or cancellation so the counterpart sees why.
type TransitionBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed rejected cancelled in_progress completed"`
	Reason string `json:"reason,omitempty" validate:"required_if=Status rejected,required_if=Status cancelled"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending completed failed refunded"`
}
