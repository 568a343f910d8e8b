package wire

import (
	"estate-marketplace/internal/adaptor"
	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/register - Create an account (public)
	r.Post("/api/auth/register", authHandler.Register)

	// POST /api/auth/login - Exchange credentials for a token (public)
	r.Post("/api/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// GET /api/auth/me - The authenticated user's profile
		r.Get("/api/auth/me", authHandler.Me)
	})
}
