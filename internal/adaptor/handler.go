package adaptor

import (
	"estate-marketplace/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Booking      *BookingHandler
	Listing      *ListingHandler
	Property     *PropertyHandler
	Review       *ReviewHandler
	Notification *NotificationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		User:         NewUserHandler(service.User, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Listing:      NewListingHandler(service.Listing, log),
		Property:     NewPropertyHandler(service.Property, log),
		Review:       NewReviewHandler(service.Review, log),
		Notification: NewNotificationHandler(service.Notification, log),
	}
}
