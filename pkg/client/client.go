// Package client is a typed wrapper over the booking HTTP API, for other Go
// services and for integration tooling. It keeps a caller's local booking
// list consistent with the server without a full refetch on every change.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"estate-marketplace/internal/data/entity"
	"estate-marketplace/internal/dto/request"
	"estate-marketplace/internal/dto/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("action not permitted")
	ErrNotFound     = errors.New("booking not found")

	// ErrConflict means another writer moved the booking first. The caller's
	// view is stale; refetch before retrying.
	ErrConflict = errors.New("booking changed concurrently")
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ListBookings returns the viewer's bookings. Pass a status to narrow the
// page to one lifecycle state.
func (c *Client) ListBookings(ctx context.Context, status *entity.BookingStatus, page, perPage int) ([]*entity.Booking, error) {
	url := fmt.Sprintf("%s/api/bookings?page=%d&per_page=%d", c.baseURL, page, perPage)
	if status != nil {
		url += "&status=" + string(*status)
	}

	var payload response.PaginatedResponse[response.BookingResponse]
	if err := c.do(ctx, http.MethodGet, url, nil, &payload); err != nil {
		return nil, err
	}

	bookings := make([]*entity.Booking, len(payload.Data))
	for i := range payload.Data {
		b, err := toBooking(&payload.Data[i])
		if err != nil {
			return nil, err
		}
		bookings[i] = b
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	url := fmt.Sprintf("%s/api/bookings/%s", c.baseURL, id)

	var payload response.BookingResponse
	if err := c.do(ctx, http.MethodGet, url, nil, &payload); err != nil {
		return nil, err
	}
	return toBooking(&payload)
}

// UpdateBookingStatus requests a lifecycle transition and returns the
// server's authoritative record.
func (c *Client) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, reason string) (*entity.Booking, error) {
	url := fmt.Sprintf("%s/api/bookings/%s/status", c.baseURL, id)
	body := request.TransitionBookingRequest{Status: string(status), Reason: reason}

	var payload response.BookingResponse
	if err := c.do(ctx, http.MethodPatch, url, body, &payload); err != nil {
		return nil, err
	}
	return toBooking(&payload)
}

// TransitionAndReconcile performs a status update and folds the result into
// the caller's local list without refetching the whole page. The returned
// list shares every untouched element with the input.
//
// On a concurrency conflict the server's record is fetched and its actual
// status substituted, so the caller's view converges on the truth even
// though the requested transition lost; ErrConflict is still returned so
// the caller can surface it.
func (c *Client) TransitionAndReconcile(ctx context.Context, list []*entity.Booking, id uuid.UUID, status entity.BookingStatus, reason string) ([]*entity.Booking, error) {
	updated, err := c.UpdateBookingStatus(ctx, id, status, reason)
	if err != nil {
		if !errors.Is(err, ErrConflict) {
			return list, err
		}
		authoritative, gerr := c.GetBooking(ctx, id)
		if gerr != nil {
			return list, err
		}
		reconciled, rerr := entity.ApplyTransition(list, id, authoritative.Status)
		if rerr != nil {
			return list, err
		}
		return reconciled, ErrConflict
	}

	reconciled, rerr := entity.ApplyTransition(list, id, updated.Status)
	if rerr != nil {
		// The booking fell off the local page; a refetch is the only way
		// to know where it belongs now.
		return c.ListBookings(ctx, nil, 1, len(list)+1)
	}
	return reconciled, nil
}

func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", env.Message, ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w", env.Message, ErrForbidden)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", env.Message, ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", env.Message, ErrConflict)
	default:
		return fmt.Errorf("%s %s: %s (%d)", method, url, env.Message, resp.StatusCode)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}
	return nil
}

func toBooking(r *response.BookingResponse) (*entity.Booking, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("parse booking id: %w", err)
	}
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("parse service id: %w", err)
	}
	seekerID, err := uuid.Parse(r.SeekerID)
	if err != nil {
		return nil, fmt.Errorf("parse seeker id: %w", err)
	}
	providerID, err := uuid.Parse(r.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("parse provider id: %w", err)
	}
	price, err := decimal.NewFromString(r.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("parse total price: %w", err)
	}

	return &entity.Booking{
		Base: entity.Base{
			ID:        id,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		ServiceID:       serviceID,
		SeekerID:        seekerID,
		ProviderID:      providerID,
		ScheduledAt:     r.ScheduledAt,
		DurationHours:   r.DurationHours,
		Status:          r.Status,
		TotalPrice:      price,
		PaymentStatus:   r.PaymentStatus,
		Notes:           r.Notes,
		ContactPhone:    r.ContactPhone,
		ServiceLocation: r.ServiceLocation,
	}, nil
}
