package entity

import (
	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationBookingCreated    NotificationType = "booking_created"
	NotificationBookingTransition NotificationType = "booking_transition"
	NotificationVerification      NotificationType = "verification"
)

type Notification struct {
	BaseSimple
	UserID    uuid.UUID        `db:"user_id"`
	BookingID *uuid.UUID       `db:"booking_id"`
	Type      NotificationType `db:"type"`
	Message   string           `db:"message"`
	IsRead    bool             `db:"is_read"`
}
