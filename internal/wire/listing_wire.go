package wire

import (
	"estate-marketplace/internal/adaptor"
	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireListing(
	r chi.Router,
	listingHandler *adaptor.ListingHandler,
	reviewHandler *adaptor.ReviewHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/services - Browse service listings, optional ?category= filter
	r.Get("/api/services", listingHandler.GetServices)

	// GET /api/services/{id} - One service listing with rating summary
	r.Get("/api/services/{id}", listingHandler.GetServiceByID)

	// GET /api/services/{id}/reviews - Reviews left on a service
	r.Get("/api/services/{id}/reviews", reviewHandler.GetServiceReviews)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// GET /api/services/mine - The caller's own listings
		r.Get("/api/services/mine", listingHandler.GetMyServices)

		// POST /api/services - Publish a listing (verified provider)
		r.Post("/api/services", listingHandler.CreateService)

		// PUT /api/services/{id} - Edit an owned listing
		r.Put("/api/services/{id}", listingHandler.UpdateService)

		// DELETE /api/services/{id} - Remove an owned listing
		r.Delete("/api/services/{id}", listingHandler.DeleteService)
	})
}
