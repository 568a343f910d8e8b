package usecase

import (
	"context"
	"fmt"

	"estate-marketplace/internal/data/repository"
	"estate-marketplace/internal/dto/request"
	"estate-marketplace/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationService interface {
	GetNotifications(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.NotificationListResponse, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.NotificationListResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	notifications, err := s.repo.Notification.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get notifications", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get notifications: %w", err)
	}

	total, err := s.repo.Notification.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count notifications", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	unread, err := s.repo.Notification.CountUnread(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count unread notifications", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	notificationResponses := make([]response.NotificationResponse, len(notifications))
	for i, n := range notifications {
		notificationResponses[i] = response.NotificationToResponse(n)
	}

	return &response.NotificationListResponse{
		Notifications: response.NewPaginatedResponse(notificationResponses, req.Page, req.PerPage, total),
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	id, err := uuid.Parse(notificationID)
	if err != nil {
		return fmt.Errorf("invalid notification ID format %s: %w", notificationID, err)
	}

	if err := s.repo.Notification.MarkRead(ctx, id, userUUID); err != nil {
		s.log.Error("Failed to mark notification read",
			zap.Error(err),
			zap.String("notification_id", notificationID),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := s.repo.Notification.MarkAllRead(ctx, userUUID); err != nil {
		s.log.Error("Failed to mark all notifications read", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("mark all notifications read: %w", err)
	}

	s.log.Info("All notifications marked read", zap.String("user_id", userID))
	return nil
}
