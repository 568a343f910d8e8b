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

type ListingHandler struct {
	service usecase.ListingService
	log     *zap.Logger
}

func NewListingHandler(service usecase.ListingService, log *zap.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		log:     log.With(zap.String("handler", "listing")),
	}
}

// GetServices handles GET /api/services (public). An optional ?category=
// query narrows the list.
func (h *ListingHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	var category *string
	if c := query.Get("category"); c != "" {
		category = &c
	}

	services, err := h.service.GetServices(r.Context(), category, req)
	if err != nil {
		h.handleServiceError(w, err, "get services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetServiceByID handles GET /api/services/{id} (public)
func (h *ListingHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	service, err := h.service.GetServiceByID(r.Context(), serviceID)
	if err != nil {
		h.handleServiceError(w, err, "get service by ID")
		return
	}

	utils.ResponseSuccess(w, "success", service)
}

// GetMyServices handles GET /api/services/mine (protected, provider)
func (h *ListingHandler) GetMyServices(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	services, err := h.service.GetMyServices(r.Context(), userID.String(), req)
	if err != nil {
		h.handleServiceError(w, err, "get owned services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// CreateService handles POST /api/services (protected, verified provider)
func (h *ListingHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	service, err := h.service.CreateService(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create service")
		return
	}

	utils.ResponseCreated(w, "success", service)
}

// UpdateService handles PUT /api/services/{id} (protected, owner)
func (h *ListingHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	var req request.ServiceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	service, err := h.service.UpdateService(r.Context(), userID.String(), serviceID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update service")
		return
	}

	utils.ResponseSuccess(w, "success", service)
}

// DeleteService handles DELETE /api/services/{id} (protected, owner)
func (h *ListingHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	if err := h.service.DeleteService(r.Context(), userID.String(), serviceID); err != nil {
		h.handleServiceError(w, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *ListingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "unauthorized"):
		h.log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"), strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
