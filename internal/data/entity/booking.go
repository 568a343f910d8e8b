package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusRejected   BookingStatus = "rejected"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled, BookingStatusRejected:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return PaymentStatus(s), true
	default:
		return "", false
	}
}

type Booking struct {
	Base
	ServiceID       uuid.UUID       `db:"service_id"`
	SeekerID        uuid.UUID       `db:"seeker_id"`
	ProviderID      uuid.UUID       `db:"provider_id"`
	ScheduledAt     time.Time       `db:"scheduled_at"`
	DurationHours   float64         `db:"duration_hours"`
	Status          BookingStatus   `db:"status"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	PaymentStatus   PaymentStatus   `db:"payment_status"`
	Notes           *string         `db:"notes"`
	ContactPhone    *string         `db:"contact_phone"`
	ServiceLocation *string         `db:"service_location"`
}

// ValidationError reports a precondition violation at booking construction,
// naming the offending field. It never reaches the remote store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

type NewBookingParams struct {
	ServiceID       uuid.UUID
	SeekerID        uuid.UUID
	ProviderID      uuid.UUID
	ScheduledAt     time.Time
	DurationHours   float64
	TotalPrice      decimal.Decimal
	Notes           *string
	ContactPhone    *string
	ServiceLocation *string
}

// NewBooking constructs a pending booking, enforcing the model invariants:
// positive duration, non-negative price, and seeker != provider (a user
// cannot book their own service).
func NewBooking(p NewBookingParams) (*Booking, error) {
	if p.DurationHours <= 0 {
		return nil, &ValidationError{Field: "duration_hours", Message: "must be positive"}
	}
	if p.SeekerID == p.ProviderID {
		return nil, &ValidationError{Field: "seeker_id", Message: "seeker and provider must differ"}
	}
	if p.TotalPrice.IsNegative() {
		return nil, &ValidationError{Field: "total_price", Message: "must not be negative"}
	}

	now := time.Now()
	return &Booking{
		Base: Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ServiceID:       p.ServiceID,
		SeekerID:        p.SeekerID,
		ProviderID:      p.ProviderID,
		ScheduledAt:     p.ScheduledAt,
		DurationHours:   p.DurationHours,
		Status:          BookingStatusPending,
		TotalPrice:      p.TotalPrice,
		PaymentStatus:   PaymentStatusPending,
		Notes:           p.Notes,
		ContactPhone:    p.ContactPhone,
		ServiceLocation: p.ServiceLocation,
	}, nil
}
