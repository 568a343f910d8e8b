package repository

import (
	"estate-marketplace/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Service      ServiceRepository
	Property     PropertyRepository
	Booking      BookingRepository
	Review       ReviewRepository
	Notification NotificationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Service:      NewServiceRepository(db, log),
		Property:     NewPropertyRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Review:       NewReviewRepository(db, log),
		Notification: NewNotificationRepository(db, log),
	}
}
