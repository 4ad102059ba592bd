package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"blogsite-backend/internal/domains/notification"
	"blogsite-backend/internal/shared/response"
	"blogsite-backend/pkg/logger"
)

type NotificationHandler struct {
	service notification.Service
}

func NewNotificationHandler(service notification.Service) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// NotifySubscribers handles POST /api/notify-subscribers.
func (h *NotificationHandler) NotifySubscribers(c *gin.Context) {
	var req notification.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Post title and URL are required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	summary, err := h.service.NotifyNewPost(c.Request.Context(), req)
	if errors.Is(err, notification.ErrMissingPostInfo) {
		response.BadRequest(c, "Post title and URL are required")
		return
	}
	if err != nil {
		logger.Error("Notify subscribers failed", err)
		response.InternalServerError(c, "Failed to send notifications")
		return
	}

	message := "Notifications sent successfully"
	if summary.Total == 0 {
		message = "No active subscribers found"
	}

	response.OKWith(c, gin.H{
		"message": message,
		"sent":    summary.Sent,
		"failed":  summary.Failed,
		"total":   summary.Total,
	})
}
