package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"estate-marketplace/internal/data/entity"
	"estate-marketplace/internal/dto/request"
	"estate-marketplace/internal/usecase"
	"estate-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected, seeker)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBookings handles GET /api/bookings (protected). An optional ?status=
// query narrows the list to one lifecycle state.
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	var status *string
	if s := query.Get("status"); s != "" {
		status = &s
	}

	bookings, err := h.service.GetBookings(r.Context(), userID.String(), role, status, req)
	if err != nil {
		h.handleServiceError(w, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id} (protected)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), userID.String(), role, bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateBookingStatus handles PATCH /api/bookings/{id}/status (protected)
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.TransitionBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.TransitionBooking(r.Context(), userID.String(), role, bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdatePaymentStatus handles PATCH /api/bookings/{id}/payment (protected, provider)
func (h *BookingHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.UpdatePaymentStatus(r.Context(), userID.String(), bookingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update payment status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// handleServiceError maps booking errors onto status codes. Lifecycle and
// concurrency failures carry typed errors; everything else falls back to
// message matching.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var transitionErr *entity.TransitionError
	var validationErr *entity.ValidationError
	var notFoundErr *entity.NotFoundError

	switch {
	case errors.Is(err, entity.ErrConflict):
		h.log.Warn(operation+" failed - concurrent update",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.As(err, &transitionErr):
		h.log.Warn(operation+" failed - transition rejected",
			zap.Error(err),
			zap.String("operation", operation))
		if transitionErr.Kind == entity.TransitionUnauthorized {
			utils.ResponseForbidden(w, err.Error())
		} else {
			utils.ResponseBadRequest(w, err.Error(), nil)
		}

	case errors.As(err, &validationErr):
		h.log.Warn(operation+" failed - invalid booking",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.As(err, &notFoundErr), strings.Contains(err.Error(), "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(err.Error(), "unauthorized"):
		h.log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"),
		strings.Contains(err.Error(), "cannot"):
		h.log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
