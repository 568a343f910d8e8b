package wire

import (
	"estate-marketplace/internal/adaptor"
	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// Provider verification queue
	r.Route("/api/admin/providers", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/providers/pending - Providers awaiting verification
		r.Get("/pending", userHandler.GetPendingProviders)

		// PATCH /api/admin/providers/{id}/verification - Approve or reject a provider
		r.Patch("/{id}/verification", userHandler.DecideVerification)
	})
}
