package usecase

import (
	"estate-marketplace/internal/data/repository"
	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	User         UserService
	Listing      ListingService
	Property     PropertyService
	Booking      BookingService
	Review       ReviewService
	Notification NotificationService
}

func NewService(repo *repository.Repository, config *utils.Config, tokens *auth.TokenManager, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, tokens, log),
		User:         NewUserService(repo, log),
		Listing:      NewListingService(repo, log),
		Property:     NewPropertyService(repo, log),
		Booking:      NewBookingService(repo, log),
		Review:       NewReviewService(repo, log),
		Notification: NewNotificationService(repo, log),
	}
}
