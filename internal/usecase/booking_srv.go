package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estate-marketplace/internal/data/entity"
	"estate-marketplace/internal/data/repository"
	"estate-marketplace/internal/dto/request"
	"estate-marketplace/internal/dto/response"
	"estate-marketplace/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, seekerID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookings(ctx context.Context, viewerID, viewerRole string, statusFilter *string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, viewerID, viewerRole, bookingID string) (*response.BookingResponse, error)

	// TransitionBooking is the single mutating lifecycle operation. It
	// validates the edge locally, applies it with a status-guarded update,
	// and returns the authoritative stored record.
	TransitionBooking(ctx context.Context, viewerID, viewerRole, bookingID string, req *request.TransitionBookingRequest) (*response.BookingResponse, error)
	UpdatePaymentStatus(ctx context.Context, viewerID, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, seekerID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	seekerUUID, err := uuid.Parse(seekerID)
	if err != nil {
		return nil, fmt.Errorf("invalid seeker ID format %s: %w", seekerID, err)
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", req.ServiceID, err)
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduled_at %s: %w", req.ScheduledAt, err)
	}
	if scheduledAt.Before(time.Now()) {
		return nil, fmt.Errorf("cannot book in the past")
	}

	service, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		s.log.Error("Failed to load service for booking", zap.Error(err), zap.String("service_id", req.ServiceID))
		return nil, fmt.Errorf("load service: %w", err)
	}
	if service == nil || !service.IsActive {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	totalPrice := service.Price.Mul(decimal.NewFromFloat(req.DurationHours))

	booking, err := entity.NewBooking(entity.NewBookingParams{
		ServiceID:       serviceID,
		SeekerID:        seekerUUID,
		ProviderID:      service.ProviderID,
		ScheduledAt:     scheduledAt,
		DurationHours:   req.DurationHours,
		TotalPrice:      totalPrice,
		Notes:           req.Notes,
		ContactPhone:    req.ContactPhone,
		ServiceLocation: req.ServiceLocation,
	})
	if err != nil {
		// Construction invariants failed; nothing was sent to the store.
		s.log.Warn("Booking construction rejected", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("seeker_id", seekerID),
			zap.String("service_id", req.ServiceID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.notify(ctx, booking.ProviderID, booking.ID, entity.NotificationBookingCreated,
		fmt.Sprintf("New booking request for %s", service.Title))

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("seeker_id", seekerID),
		zap.String("provider_id", booking.ProviderID.String()),
		zap.String("total_price", booking.TotalPrice.StringFixed(2)),
	)

	actions := entity.ActionsFor(booking, entity.RoleSeeker, seekerUUID)
	resp := response.BookingToResponse(booking, service.Title, actions)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context, viewerID, viewerRole string, statusFilter *string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	viewerUUID, err := uuid.Parse(viewerID)
	if err != nil {
		return nil, fmt.Errorf("invalid viewer ID format %s: %w", viewerID, err)
	}

	role, ok := entity.ParseRole(viewerRole)
	if !ok {
		return nil, fmt.Errorf("invalid role %s", viewerRole)
	}

	var status *entity.BookingStatus
	if statusFilter != nil {
		parsed, ok := entity.ParseBookingStatus(*statusFilter)
		if !ok {
			return nil, fmt.Errorf("invalid status filter %s", *statusFilter)
		}
		status = &parsed
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindForUser(ctx, viewerUUID, status, limit, offset)
	if err != nil {
		s.log.Error("Failed to get bookings",
			zap.Error(err),
			zap.String("viewer_id", viewerID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountForUser(ctx, viewerUUID, status)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err), zap.String("viewer_id", viewerID))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		var serviceTitle string
		service, _ := s.repo.Service.FindByID(ctx, booking.ServiceID)
		if service != nil {
			serviceTitle = service.Title
		}

		actions := entity.ActionsFor(booking, role, viewerUUID)
		bookingResponses[i] = response.BookingToResponse(booking, serviceTitle, actions)
	}

	s.log.Info("Bookings retrieved",
		zap.String("viewer_id", viewerID),
		zap.Int("count", len(bookings)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, viewerID, viewerRole, bookingID string) (*response.BookingResponse, error) {
	booking, viewerUUID, role, err := s.loadForViewer(ctx, viewerID, viewerRole, bookingID)
	if err != nil {
		return nil, err
	}

	actions := entity.ActionsFor(booking, role, viewerUUID)
	if !actions.Has(entity.ActionView) {
		return nil, fmt.Errorf("unauthorized to view booking %s", bookingID)
	}

	var serviceTitle string
	service, _ := s.repo.Service.FindByID(ctx, booking.ServiceID)
	if service != nil {
		serviceTitle = service.Title
	}

	resp := response.BookingToResponse(booking, serviceTitle, actions)
	return &resp, nil
}

func (s *bookingService) TransitionBooking(ctx context.Context, viewerID, viewerRole, bookingID string, req *request.TransitionBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Transition validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, viewerUUID, role, err := s.loadForViewer(ctx, viewerID, viewerRole, bookingID)
	if err != nil {
		return nil, err
	}

	requested, ok := entity.ParseBookingStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("invalid status %s", req.Status)
	}

	// The viewer must sit on the acting side of the record; holding the
	// right role account is not enough.
	sideMatches := (role == entity.RoleSeeker && viewerUUID == booking.SeekerID) ||
		(role == entity.RoleProvider && viewerUUID == booking.ProviderID)
	if !sideMatches {
		return nil, &entity.TransitionError{
			Kind:  entity.TransitionUnauthorized,
			From:  booking.Status,
			To:    requested,
			Actor: role,
		}
	}

	next, err := entity.CanTransition(booking.Status, requested, role)
	if err != nil {
		s.log.Warn("Transition rejected",
			zap.String("booking_id", bookingID),
			zap.String("from", string(booking.Status)),
			zap.String("to", string(requested)),
			zap.String("role", string(role)),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.repo.Booking.UpdateStatusGuarded(ctx, booking.ID, booking.Status, next); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			s.log.Warn("Transition lost to concurrent writer",
				zap.String("booking_id", bookingID),
				zap.String("expected", string(booking.Status)),
			)
		}
		return nil, err
	}

	// Cancellation of a paid booking triggers a refund record; the money
	// movement itself happens outside this system.
	if next == entity.BookingStatusCancelled && booking.PaymentStatus == entity.PaymentStatusCompleted {
		if err := s.repo.Booking.UpdatePaymentStatus(ctx, booking.ID, entity.PaymentStatusRefunded); err != nil {
			s.log.Error("Failed to mark payment refunded",
				zap.Error(err),
				zap.String("booking_id", bookingID),
			)
		}
	}

	// Refetch: the stored record is authoritative, not our local guess.
	updated, err := s.repo.Booking.FindByID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("reload booking %s: %w", bookingID, err)
	}
	if updated == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	counterpart := updated.SeekerID
	if role == entity.RoleSeeker {
		counterpart = updated.ProviderID
	}
	message := fmt.Sprintf("Booking moved to %s", next)
	if req.Reason != "" {
		message = fmt.Sprintf("%s: %s", message, req.Reason)
	}
	s.notify(ctx, counterpart, updated.ID, entity.NotificationBookingTransition, message)

	s.log.Info("Booking transitioned",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(next)),
		zap.String("actor", string(role)),
	)

	var serviceTitle string
	service, _ := s.repo.Service.FindByID(ctx, updated.ServiceID)
	if service != nil {
		serviceTitle = service.Title
	}

	actions := entity.ActionsFor(updated, role, viewerUUID)
	resp := response.BookingToResponse(updated, serviceTitle, actions)
	return &resp, nil
}

func (s *bookingService) UpdatePaymentStatus(ctx context.Context, viewerID, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Payment status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, viewerUUID, _, err := s.loadForViewer(ctx, viewerID, string(entity.RoleProvider), bookingID)
	if err != nil {
		return nil, err
	}

	// Only the provider records payments (manual/offline settlement).
	if viewerUUID != booking.ProviderID {
		return nil, fmt.Errorf("unauthorized to update payment for booking %s", bookingID)
	}

	status, ok := entity.ParsePaymentStatus(req.PaymentStatus)
	if !ok {
		return nil, fmt.Errorf("invalid payment status %s", req.PaymentStatus)
	}

	if err := s.repo.Booking.UpdatePaymentStatus(ctx, booking.ID, status); err != nil {
		s.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	updated, err := s.repo.Booking.FindByID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("reload booking %s: %w", bookingID, err)
	}
	if updated == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	s.log.Info("Payment status updated",
		zap.String("booking_id", bookingID),
		zap.String("payment_status", string(status)),
	)

	actions := entity.ActionsFor(updated, entity.RoleProvider, viewerUUID)
	resp := response.BookingToResponse(updated, "", actions)
	return &resp, nil
}

// loadForViewer parses the caller's identity and loads the booking.
func (s *bookingService) loadForViewer(ctx context.Context, viewerID, viewerRole, bookingID string) (*entity.Booking, uuid.UUID, entity.UserRole, error) {
	viewerUUID, err := uuid.Parse(viewerID)
	if err != nil {
		return nil, uuid.Nil, "", fmt.Errorf("invalid viewer ID format %s: %w", viewerID, err)
	}

	role, ok := entity.ParseRole(viewerRole)
	if !ok {
		return nil, uuid.Nil, "", fmt.Errorf("invalid role %s", viewerRole)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, uuid.Nil, "", fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, uuid.Nil, "", fmt.Errorf("load booking: %w", err)
	}
	if booking == nil {
		return nil, uuid.Nil, "", fmt.Errorf("booking %s not found", bookingID)
	}

	return booking, viewerUUID, role, nil
}

func (s *bookingService) notify(ctx context.Context, userID, bookingID uuid.UUID, kind entity.NotificationType, message string) {
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		BookingID: &bookingID,
		Type:      kind,
		Message:   message,
	}
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		// The transition already happened; a lost notification is tolerable.
		s.log.Warn("Failed to create notification",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("booking_id", bookingID.String()),
		)
	}
}
