package handler

import (
	"github.com/gin-gonic/gin"

	"blogsite-backend/internal/domains/subscriber"
	"blogsite-backend/internal/shared/response"
	"blogsite-backend/pkg/logger"
)

// SubscriberHandler handles the subscribe/unsubscribe endpoints.
type SubscriberHandler struct {
	service subscriber.Service
}

func NewSubscriberHandler(service subscriber.Service) *SubscriberHandler {
	return &SubscriberHandler{service: service}
}

// Subscribe handles POST /api/subscribe.
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req subscriber.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email is required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.service.Subscribe(c.Request.Context(), req.Email); err != nil {
		logger.Error("Subscribe failed", err)
		response.InternalServerError(c, "Failed to subscribe. Please try again later.")
		return
	}

	response.OK(c, "Successfully subscribed! You will receive updates when new posts are published.")
}

// Unsubscribe handles POST /api/unsubscribe. An unknown email gets the same
// success message as a known one, so the endpoint cannot be used to probe
// which addresses are registered.
func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	var req subscriber.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email is required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		logger.Error("Unsubscribe failed", err)
		response.InternalServerError(c, "Failed to unsubscribe. Please try again later.")
		return
	}

	response.OK(c, "Successfully unsubscribed. You will no longer receive email notifications.")
}
