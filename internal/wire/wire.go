// internal/wire/wire.go
package wire

import (
	"net/http"

	"estate-marketplace/internal/adaptor"
	"estate-marketplace/internal/data/repository"
	"estate-marketplace/internal/usecase"
	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/middleware"
	"estate-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts all routes.
func Wiring(repo *repository.Repository, config *utils.Config, tokens *auth.TokenManager, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	tokens *auth.TokenManager,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, tokens, logger)
	wireUser(r, handler.User, tokens, logger)
	wireListing(r, handler.Listing, handler.Review, tokens, logger)
	wireProperty(r, handler.Property, tokens, logger)
	wireBooking(r, handler.Booking, tokens, logger)
	wireReview(r, handler.Review, tokens, logger)
	wireNotification(r, handler.Notification, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
