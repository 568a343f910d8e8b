package usecase

import (
	"context"
	"fmt"
	"time"

	"estate-marketplace/internal/data/entity"
	"estate-marketplace/internal/data/repository"
	"estate-marketplace/internal/dto/request"
	"estate-marketplace/internal/dto/response"
	"estate-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, seekerID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetServiceReviews(ctx context.Context, serviceID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, seekerID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	seekerUUID, err := uuid.Parse(seekerID)
	if err != nil {
		return nil, fmt.Errorf("invalid seeker ID format %s: %w", seekerID, err)
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to load booking for review", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}
	if booking.SeekerID != seekerUUID {
		return nil, fmt.Errorf("unauthorized to review booking %s", req.BookingID)
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, fmt.Errorf("booking %s is not completed", req.BookingID)
	}

	existing, err := s.repo.Review.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("booking %s already reviewed", req.BookingID)
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		BookingID:  bookingID,
		ServiceID:  booking.ServiceID,
		SeekerID:   seekerUUID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetServiceReviews(ctx context.Context, serviceID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s: %w", serviceID, err)
	}

	reviews, err := s.repo.Review.FindByServiceID(ctx, id, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get reviews", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	total, err := s.repo.Review.CountByServiceID(ctx, id)
	if err != nil {
		s.log.Error("Failed to count reviews", zap.Error(err), zap.String("service_id", serviceID))
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, r := range reviews {
		reviewResponses[i] = response.ReviewToResponse(r)
	}

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.PerPage, total), nil
}
