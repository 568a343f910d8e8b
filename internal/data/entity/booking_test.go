package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func validParams() NewBookingParams {
	return NewBookingParams{
		ServiceID:     uuid.New(),
		SeekerID:      uuid.New(),
		ProviderID:    uuid.New(),
		ScheduledAt:   time.Now().Add(48 * time.Hour),
		DurationHours: 2,
		TotalPrice:    decimal.RequireFromString("150.00"),
	}
}

func TestNewBooking_Defaults(t *testing.T) {
	b, err := NewBooking(validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != BookingStatusPending {
		t.Fatalf("expected status pending, got %s", b.Status)
	}
	if b.PaymentStatus != PaymentStatusPending {
		t.Fatalf("expected payment status pending, got %s", b.PaymentStatus)
	}
	if b.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}
	if b.UpdatedAt.Before(b.CreatedAt) {
		t.Fatalf("updated_at %v before created_at %v", b.UpdatedAt, b.CreatedAt)
	}
}

func TestNewBooking_Rejections(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*NewBookingParams)
		wantField string
	}{
		{
			name:      "zero duration",
			mutate:    func(p *NewBookingParams) { p.DurationHours = 0 },
			wantField: "duration_hours",
		},
		{
			name:      "negative duration",
			mutate:    func(p *NewBookingParams) { p.DurationHours = -1.5 },
			wantField: "duration_hours",
		},
		{
			name:      "seeker books own service",
			mutate:    func(p *NewBookingParams) { p.ProviderID = p.SeekerID },
			wantField: "seeker_id",
		},
		{
			name:      "negative price",
			mutate:    func(p *NewBookingParams) { p.TotalPrice = decimal.RequireFromString("-0.01") },
			wantField: "total_price",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)

			_, err := NewBooking(p)
			if err == nil {
				t.Fatalf("expected error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if verr.Field != tc.wantField {
				t.Fatalf("expected field %s, got %s", tc.wantField, verr.Field)
			}
		})
	}
}

func TestNewBooking_SelfBookingAlwaysFails(t *testing.T) {
	// The seeker == provider check must fire regardless of other fields.
	for _, duration := range []float64{0.5, 1, 8, 24} {
		p := validParams()
		p.DurationHours = duration
		p.SeekerID = p.ProviderID
		p.TotalPrice = decimal.Zero

		_, err := NewBooking(p)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "seeker_id" {
			t.Fatalf("duration %v: expected seeker_id validation error, got %v", duration, err)
		}
	}
}

func TestNewBooking_ZeroPriceAllowed(t *testing.T) {
	p := validParams()
	p.TotalPrice = decimal.Zero
	if _, err := NewBooking(p); err != nil {
		t.Fatalf("zero price should be valid: %v", err)
	}
}

func TestParseBookingStatus(t *testing.T) {
	for _, s := range []BookingStatus{
		BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled, BookingStatusRejected,
	} {
		got, ok := ParseBookingStatus(string(s))
		if !ok || got != s {
			t.Fatalf("expected %s to parse", s)
		}
	}
	if _, ok := ParseBookingStatus("expired"); ok {
		t.Fatalf("expected unknown status to fail")
	}
}
