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

type PropertyHandler struct {
	service usecase.PropertyService
	log     *zap.Logger
}

func NewPropertyHandler(service usecase.PropertyService, log *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		log:     log.With(zap.String("handler", "property")),
	}
}

// GetProperties handles GET /api/properties (public). An optional ?type=
// query narrows the list.
func (h *PropertyHandler) GetProperties(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	var propertyType *string
	if t := query.Get("type"); t != "" {
		propertyType = &t
	}

	properties, err := h.service.GetProperties(r.Context(), propertyType, req)
	if err != nil {
		h.handleServiceError(w, err, "get properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// GetPropertyByID handles GET /api/properties/{id} (public)
func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	property, err := h.service.GetPropertyByID(r.Context(), propertyID)
	if err != nil {
		h.handleServiceError(w, err, "get property by ID")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// GetMyProperties handles GET /api/properties/mine (protected, provider)
func (h *PropertyHandler) GetMyProperties(w http.ResponseWriter, r *http.Request) {
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

	properties, err := h.service.GetMyProperties(r.Context(), userID.String(), req)
	if err != nil {
		h.handleServiceError(w, err, "get owned properties")
		return
	}

	utils.ResponseSuccess(w, "success", properties)
}

// CreateProperty handles POST /api/properties (protected, verified provider)
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	property, err := h.service.CreateProperty(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create property")
		return
	}

	utils.ResponseCreated(w, "success", property)
}

// UpdateProperty handles PUT /api/properties/{id} (protected, owner)
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	var req request.PropertyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	property, err := h.service.UpdateProperty(r.Context(), userID.String(), propertyID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update property")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// UpdatePropertyStatus handles PATCH /api/properties/{id}/status (protected, owner)
func (h *PropertyHandler) UpdatePropertyStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	var req request.PropertyStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	property, err := h.service.UpdatePropertyStatus(r.Context(), userID.String(), propertyID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update property status")
		return
	}

	utils.ResponseSuccess(w, "success", property)
}

// DeleteProperty handles DELETE /api/properties/{id} (protected, owner)
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	propertyID := chi.URLParam(r, "id")
	if propertyID == "" {
		utils.ResponseBadRequest(w, "Property ID is required", nil)
		return
	}

	if err := h.service.DeleteProperty(r.Context(), userID.String(), propertyID); err != nil {
		h.handleServiceError(w, err, "delete property")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *PropertyHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
