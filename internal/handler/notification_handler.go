package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/service"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
	"github.com/skillswap/skillswap-api/pkg/response"
)

// NotificationHandler wires HTTP endpoints to the notification service.
type NotificationHandler struct {
	service *service.NotificationService
}

// NewNotificationHandler creates a new handler.
func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// Send godoc
// @Summary Send a notification
// @Description Emails when an address is supplied, persists when a user id is supplied
// @Tags Notifications
// @Accept json
// @Produce json
// @Param payload body dto.SendNotificationRequest true "Notification payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /notifications/send [post]
func (h *NotificationHandler) Send(c *gin.Context) {
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "subject and message are required"))
		return
	}

	if err := h.service.Send(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Notification processed", nil)
}

// ListForUser godoc
// @Summary Notifications for an account, newest first
// @Tags Notifications
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} response.Envelope
// @Router /notifications/{userId} [get]
func (h *NotificationHandler) ListForUser(c *gin.Context) {
	notifications, err := h.service.ListForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, notifications)
}
