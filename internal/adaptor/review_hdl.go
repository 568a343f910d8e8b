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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews (protected, seeker)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetServiceReviews handles GET /api/services/{id}/reviews (public)
func (h *ReviewHandler) GetServiceReviews(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	reviews, err := h.service.GetServiceReviews(r.Context(), serviceID, req)
	if err != nil {
		h.handleServiceError(w, err, "get service reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "unauthorized"):
		h.log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "already reviewed"),
		strings.Contains(errMsg, "not completed"):
		h.log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
