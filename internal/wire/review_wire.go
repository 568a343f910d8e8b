package wire

import (
	"estate-marketplace/internal/adaptor"
	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// Public review reads are mounted alongside the service routes.

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// POST /api/reviews - Review a completed booking (seeker)
		r.Post("/api/reviews", reviewHandler.CreateReview)
	})
}
