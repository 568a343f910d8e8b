package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"estate-marketplace/internal/dto/request"
	"estate-marketplace/internal/usecase"
	"estate-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetPendingProviders handles GET /api/admin/providers/pending (admin only)
func (h *UserHandler) GetPendingProviders(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	providers, err := h.service.GetPendingProviders(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get pending providers")
		return
	}

	utils.ResponseSuccess(w, "success", providers)
}

// DecideVerification handles PATCH /api/admin/providers/{id}/verification (admin only)
func (h *UserHandler) DecideVerification(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "id")
	if providerID == "" {
		utils.ResponseBadRequest(w, "Provider ID is required", nil)
		return
	}

	var req request.VerificationDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	provider, err := h.service.DecideVerification(r.Context(), providerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "decide provider verification")
		return
	}

	utils.ResponseSuccess(w, "success", provider)
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "not a provider"):
		h.log.Warn(operation+" failed - wrong role", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
