package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"estate-marketplace/internal/dto/request"
	"estate-marketplace/internal/usecase"
	"estate-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/auth/register (public)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	auth, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseCreated(w, "success", auth)
}

// Login handles POST /api/auth/login (public)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// Me handles GET /api/auth/me (protected)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.service.Me(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get current user")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "invalid email or password"):
		h.log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "already"):
		h.log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "deactivated"):
		h.log.Warn(operation+" failed - account deactivated", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
