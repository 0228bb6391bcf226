package handler

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/service"
	"taskboard/pkg/utils"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List 通知列表
// @Summary 通知列表和未读数
// @Tags Notification
// @Produce json
// @Success 200 {object} utils.Response{data=dto.NotificationListResponse}
// @Security BearerAuth
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	utils.Success(c, h.notificationService.List())
}

// MarkAllRead 全部标记已读
// @Summary 全部标记已读
// @Tags Notification
// @Produce json
// @Success 200 {object} utils.Response
// @Security BearerAuth
// @Router /api/v1/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	updated := h.notificationService.MarkAllRead()
	utils.Success(c, gin.H{"updated": updated})
}
