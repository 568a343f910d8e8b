package wire

import (
	"estate-marketplace/internal/adaptor"
	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireNotification(
	r chi.Router,
	notificationHandler *adaptor.NotificationHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// GET /api/notifications - The viewer's notifications with unread count
		r.Get("/", notificationHandler.GetNotifications)

		// PATCH /api/notifications/read-all - Mark everything read
		r.Patch("/read-all", notificationHandler.MarkAllRead)

		// PATCH /api/notifications/{id}/read - Mark one read
		r.Patch("/{id}/read", notificationHandler.MarkRead)
	})
}
