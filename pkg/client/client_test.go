package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estate-marketplace/internal/data/entity"
	"estate-marketplace/internal/dto/response"
	"estate-marketplace/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testBooking(status entity.BookingStatus) *entity.Booking {
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ServiceID:     uuid.New(),
		SeekerID:      uuid.New(),
		ProviderID:    uuid.New(),
		ScheduledAt:   time.Now().Add(24 * time.Hour),
		DurationHours: 2,
		Status:        status,
		TotalPrice:    decimal.NewFromInt(100),
		PaymentStatus: entity.PaymentStatusPending,
	}
}

func bookingJSON(b *entity.Booking) response.BookingResponse {
	return response.BookingToResponse(b, "Test Service", entity.ActionSet{})
}

func TestUpdateBookingStatus_MapsConflict(t *testing.T) {
	booking := testBooking(entity.BookingStatusPending)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseConflict(w, "booking changed concurrently")
	}))
	defer srv.Close()

	c := New(srv.URL, "token")
	_, err := c.UpdateBookingStatus(context.Background(), booking.ID, entity.BookingStatusConfirmed, "")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict", err)
	}
}

func TestUpdateBookingStatus_MapsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "booking not found")
	}))
	defer srv.Close()

	c := New(srv.URL, "token")
	_, err := c.UpdateBookingStatus(context.Background(), uuid.New(), entity.BookingStatusConfirmed, "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateBookingStatus_SendsAuthHeader(t *testing.T) {
	booking := testBooking(entity.BookingStatusConfirmed)

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		utils.ResponseSuccess(w, "success", bookingJSON(booking))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-token")
	got, err := c.UpdateBookingStatus(context.Background(), booking.ID, entity.BookingStatusConfirmed, "")
	if err != nil {
		t.Fatalf("UpdateBookingStatus() error = %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if got.ID != booking.ID || got.Status != entity.BookingStatusConfirmed {
		t.Errorf("got booking %s status %s", got.ID, got.Status)
	}
}

func TestListBookings_StatusQuery(t *testing.T) {
	booking := testBooking(entity.BookingStatusConfirmed)

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("status")
		page := response.NewPaginatedResponse([]response.BookingResponse{bookingJSON(booking)}, 1, 10, 1)
		utils.ResponseSuccess(w, "success", page)
	}))
	defer srv.Close()

	c := New(srv.URL, "token")
	status := entity.BookingStatusConfirmed
	bookings, err := c.ListBookings(context.Background(), &status, 1, 10)
	if err != nil {
		t.Fatalf("ListBookings() error = %v", err)
	}
	if gotQuery != "confirmed" {
		t.Errorf("status query = %q, want confirmed", gotQuery)
	}
	if len(bookings) != 1 {
		t.Fatalf("got %d bookings, want 1", len(bookings))
	}
	if !bookings[0].TotalPrice.Equal(decimal.NewFromInt(100)) {
		t.Errorf("total price = %s, want 100", bookings[0].TotalPrice)
	}
}

func TestTransitionAndReconcile_UpdatesOnlyTarget(t *testing.T) {
	target := testBooking(entity.BookingStatusPending)
	other := testBooking(entity.BookingStatusConfirmed)
	list := []*entity.Booking{other, target}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		confirmed := *target
		confirmed.Status = entity.BookingStatusConfirmed
		utils.ResponseSuccess(w, "success", bookingJSON(&confirmed))
	}))
	defer srv.Close()

	c := New(srv.URL, "token")
	got, err := c.TransitionAndReconcile(context.Background(), list, target.ID, entity.BookingStatusConfirmed, "")
	if err != nil {
		t.Fatalf("TransitionAndReconcile() error = %v", err)
	}

	if got[1].Status != entity.BookingStatusConfirmed {
		t.Errorf("target status = %q, want confirmed", got[1].Status)
	}
	if got[0] != other {
		t.Error("untouched element must be kept by reference")
	}
	if target.Status != entity.BookingStatusPending {
		t.Error("input list element must not be mutated")
	}
}

func TestTransitionAndReconcile_ConflictConvergesOnServerState(t *testing.T) {
	target := testBooking(entity.BookingStatusPending)
	list := []*entity.Booking{target}

	// The transition loses to a concurrent cancellation; the follow-up read
	// returns the record as the winner left it.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			utils.ResponseConflict(w, "booking changed concurrently")
			return
		}
		cancelled := *target
		cancelled.Status = entity.BookingStatusCancelled
		utils.ResponseSuccess(w, "success", bookingJSON(&cancelled))
	}))
	defer srv.Close()

	c := New(srv.URL, "token")
	got, err := c.TransitionAndReconcile(context.Background(), list, target.ID, entity.BookingStatusConfirmed, "")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("error = %v, want ErrConflict", err)
	}
	if got[0].Status != entity.BookingStatusCancelled {
		t.Errorf("local status = %q, must converge on the server's cancelled", got[0].Status)
	}
}

func TestTransitionAndReconcile_LocalMissRefetches(t *testing.T) {
	target := testBooking(entity.BookingStatusPending)

	var listCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			confirmed := *target
			confirmed.Status = entity.BookingStatusConfirmed
			utils.ResponseSuccess(w, "success", bookingJSON(&confirmed))
			return
		}
		listCalls++
		confirmed := *target
		confirmed.Status = entity.BookingStatusConfirmed
		page := response.NewPaginatedResponse([]response.BookingResponse{bookingJSON(&confirmed)}, 1, 10, 1)
		utils.ResponseSuccess(w, "success", page)
	}))
	defer srv.Close()

	// target is not in the local list, so the reconciler cannot place it.
	c := New(srv.URL, "token")
	got, err := c.TransitionAndReconcile(context.Background(), nil, target.ID, entity.BookingStatusConfirmed, "")
	if err != nil {
		t.Fatalf("TransitionAndReconcile() error = %v", err)
	}
	if listCalls != 1 {
		t.Errorf("list refetches = %d, want 1", listCalls)
	}
	if len(got) != 1 || got[0].Status != entity.BookingStatusConfirmed {
		t.Errorf("refetched list = %+v", got)
	}
}

func TestDo_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "success",
			"data":    bookingJSON(testBooking(entity.BookingStatusPending)),
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	var out response.BookingResponse
	if err := c.do(context.Background(), http.MethodGet, srv.URL, nil, &out); err != nil {
		t.Fatalf("do() error = %v", err)
	}
	if out.Status != entity.BookingStatusPending {
		t.Errorf("decoded status = %q, want pending", out.Status)
	}
}
