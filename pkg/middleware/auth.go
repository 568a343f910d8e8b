package middleware

import (
	"net/http"
	"strings"

	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth validates the Bearer access token and puts the viewer's identity on
// the request context.
func Auth(tokens *auth.TokenManager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				logger.Warn("Token carries malformed subject", zap.String("sub", claims.UserID))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires the authenticated viewer to carry the admin role.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || role != "admin" {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
