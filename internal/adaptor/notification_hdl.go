package adaptor

import (
	"net/http"
	"strings"

	"estate-marketplace/internal/dto/request"
	"estate-marketplace/internal/usecase"
	"estate-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// GetNotifications handles GET /api/notifications (protected)
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
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

	notifications, err := h.service.GetNotifications(r.Context(), userID.String(), req)
	if err != nil {
		h.handleServiceError(w, err, "get notifications")
		return
	}

	utils.ResponseSuccess(w, "success", notifications)
}

// MarkRead handles PATCH /api/notifications/{id}/read (protected)
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	notificationID := chi.URLParam(r, "id")
	if notificationID == "" {
		utils.ResponseBadRequest(w, "Notification ID is required", nil)
		return
	}

	if err := h.service.MarkRead(r.Context(), userID.String(), notificationID); err != nil {
		h.handleServiceError(w, err, "mark notification read")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// MarkAllRead handles PATCH /api/notifications/read-all (protected)
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.MarkAllRead(r.Context(), userID.String()); err != nil {
		h.handleServiceError(w, err, "mark all notifications read")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *NotificationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
