package wire

import (
	"estate-marketplace/internal/adaptor"
	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProperty(
	r chi.Router,
	propertyHandler *adaptor.PropertyHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/properties - Browse property listings, optional ?type= filter
	r.Get("/api/properties", propertyHandler.GetProperties)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// GET /api/properties/mine - The caller's own listings
		r.Get("/api/properties/mine", propertyHandler.GetMyProperties)

		// POST /api/properties - Publish a listing (verified provider)
		r.Post("/api/properties", propertyHandler.CreateProperty)

		// PUT /api/properties/{id} - Edit an owned listing
		r.Put("/api/properties/{id}", propertyHandler.UpdateProperty)

		// PATCH /api/properties/{id}/status - Mark sold, rented, or available
		r.Patch("/api/properties/{id}/status", propertyHandler.UpdatePropertyStatus)

		// DELETE /api/properties/{id} - Remove an owned listing
		r.Delete("/api/properties/{id}", propertyHandler.DeleteProperty)
	})

	// GET /api/properties/{id} - One property listing (public)
	r.Get("/api/properties/{id}", propertyHandler.GetPropertyByID)
}
