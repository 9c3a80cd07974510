// Package http 通知服务的 HTTP 接口
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubvoting/election/internal/notification/application"
	"github.com/ubvoting/election/pkg/logger"
)

// NotificationHandler 负责处理与通知相关的 HTTP 请求
type NotificationHandler struct {
	command *application.NotificationCommand
	query   *application.NotificationQuery
}

// NewNotificationHandler 创建 HTTP 处理器实例
func NewNotificationHandler(command *application.NotificationCommand, query *application.NotificationQuery) *NotificationHandler {
	return &NotificationHandler{command: command, query: query}
}

// RegisterRoutes 将处理器方法绑定到 Gin 路由引擎
func (h *NotificationHandler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/notifications")
	{
		// :id 在列表和未读计数路由中是用户 ID，在已读/删除路由中是通知 ID
		api.GET("/:id", h.ListNotifications)
		api.GET("/:id/unread-count", h.GetUnreadCount)
		api.PUT("/:id/read", h.MarkRead)
		api.DELETE("/:id", h.DeleteNotification)
	}
}

// ListNotifications 返回用户的全部通知，按创建时间倒序
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := c.Param("id")
	userType := c.Query("user_type")

	notifications, err := h.query.ListForUser(c.Request.Context(), userID, userType)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list notifications", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// GetUnreadCount 返回用户未读通知数量
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID := c.Param("id")
	userType := c.Query("user_type")

	count, err := h.query.CountUnread(c.Request.Context(), userID, userType)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to count unread notifications", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "unread_count": count})
}

// MarkRead 标记通知为已读
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID := c.Param("id")

	if err := h.command.MarkRead(c.Request.Context(), notificationID); err != nil {
		logger.Error(c.Request.Context(), "Failed to mark notification read", "notification_id", notificationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read", "notification_id": notificationID})
}

// DeleteNotification 删除通知
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	notificationID := c.Param("id")

	if err := h.command.DeleteNotification(c.Request.Context(), notificationID); err != nil {
		logger.Error(c.Request.Context(), "Failed to delete notification", "notification_id", notificationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully", "notification_id": notificationID})
}
