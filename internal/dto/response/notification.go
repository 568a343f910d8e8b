package response

import (
	"time"

	"estate-marketplace/internal/data/entity"
)

type NotificationResponse struct {
	ID        string                  `json:"id"`
	BookingID *string                 `json:"booking_id,omitempty"`
	Type      entity.NotificationType `json:"type"`
	Message   string                  `json:"message"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
}

// NotificationListResponse carries the page plus the unread badge count so
// clients render both from one call.
type NotificationListResponse struct {
	Notifications *PaginatedResponse[NotificationResponse] `json:"notifications"`
	UnreadCount   int64                                    `json:"unread_count"`
}

func NotificationToResponse(n *entity.Notification) NotificationResponse {
	var bookingID *string
	if n.BookingID != nil {
		s := n.BookingID.String()
		bookingID = &s
	}
	return NotificationResponse{
		ID:        n.ID.String(),
		BookingID: bookingID,
		Type:      n.Type,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
