package wire

import (
	"estate-marketplace/internal/adaptor"
	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	tokens *auth.TokenManager,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Every booking route needs an authenticated viewer; the service layer
	// decides what that viewer may see or do on each record.
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// POST /api/bookings - Request a service booking (seeker)
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings - The viewer's bookings, optional ?status= filter
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/bookings/{id} - One booking, participants and admins only
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PATCH /api/bookings/{id}/status - Move the booking along its lifecycle
		r.Patch("/{id}/status", bookingHandler.UpdateBookingStatus)

		// PATCH /api/bookings/{id}/payment - Record a payment outcome (provider)
		r.Patch("/{id}/payment", bookingHandler.UpdatePaymentStatus)
	})
}
