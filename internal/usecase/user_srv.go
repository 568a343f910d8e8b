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

type UserService interface {
	// Admin verification queue
	GetPendingProviders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	DecideVerification(ctx context.Context, providerID string, req *request.VerificationDecisionRequest) (*response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetPendingProviders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	providers, err := s.repo.User.FindByVerification(ctx, entity.VerificationPending, limit, offset)
	if err != nil {
		s.log.Error("Failed to get pending providers", zap.Error(err))
		return nil, fmt.Errorf("get pending providers: %w", err)
	}

	total, err := s.repo.User.CountByVerification(ctx, entity.VerificationPending)
	if err != nil {
		s.log.Error("Failed to count pending providers", zap.Error(err))
		return nil, fmt.Errorf("count pending providers: %w", err)
	}

	userResponses := make([]response.UserResponse, len(providers))
	for i, provider := range providers {
		userResponses[i] = response.UserToResponse(provider)
	}

	s.log.Info("Pending providers retrieved",
		zap.Int("count", len(providers)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *userService) DecideVerification(ctx context.Context, providerID string, req *request.VerificationDecisionRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verification decision validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(providerID)
	if err != nil {
		return nil, fmt.Errorf("invalid provider ID format %s: %w", providerID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get provider", zap.Error(err), zap.String("provider_id", providerID))
		return nil, fmt.Errorf("get provider: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("provider %s not found", providerID)
	}
	if user.Role != entity.RoleProvider {
		return nil, fmt.Errorf("user %s is not a provider", providerID)
	}

	status := entity.VerificationApproved
	if req.Decision == "rejected" {
		status = entity.VerificationRejected
	}

	if err := s.repo.User.UpdateVerification(ctx, id, status); err != nil {
		s.log.Error("Failed to update verification",
			zap.Error(err),
			zap.String("provider_id", providerID),
			zap.String("decision", req.Decision),
		)
		return nil, fmt.Errorf("update verification: %w", err)
	}

	// Tell the provider about the outcome
	message := fmt.Sprintf("Your provider account was %s", req.Decision)
	if req.Reason != nil && *req.Reason != "" {
		message = fmt.Sprintf("%s: %s", message, *req.Reason)
	}
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  id,
		Type:    entity.NotificationVerification,
		Message: message,
	}
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		// Notification failure does not undo the decision
		s.log.Warn("Failed to notify provider of verification decision",
			zap.Error(err),
			zap.String("provider_id", providerID),
		)
	}

	user.Verification = status
	user.UpdatedAt = time.Now()

	s.log.Info("Provider verification decided",
		zap.String("provider_id", providerID),
		zap.String("decision", req.Decision),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}
