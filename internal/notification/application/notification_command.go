// Package application 通知服务的命令与查询用例
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ubvoting/election/internal/notification/domain"
)

// NotificationCommand 处理通知相关的命令操作
type NotificationCommand struct {
	repo domain.NotificationRepository
}

// NewNotificationCommand 创建新的 NotificationCommand 实例
func NewNotificationCommand(repo domain.NotificationRepository) *NotificationCommand {
	return &NotificationCommand{repo: repo}
}

// CreateNotification 写入通知，返回通知 ID
func (c *NotificationCommand) CreateNotification(ctx context.Context, cmd CreateNotificationCommand) (string, error) {
	notification := &domain.Notification{
		NotificationID:       uuid.New().String(),
		UserID:               cmd.UserID,
		UserType:             domain.UserType(cmd.UserType),
		Title:                cmd.Title,
		Message:              cmd.Message,
		Type:                 cmd.Type,
		IsRead:               false,
		RelatedApplicationID: cmd.RelatedApplicationID,
	}

	if err := c.repo.Save(ctx, notification); err != nil {
		return "", fmt.Errorf("failed to save notification: %w", err)
	}

	return notification.NotificationID, nil
}

// MarkRead 标记通知为已读。通知不存在时为无操作成功。
func (c *NotificationCommand) MarkRead(ctx context.Context, notificationID string) error {
	if err := c.repo.MarkRead(ctx, notificationID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// DeleteNotification 删除通知
func (c *NotificationCommand) DeleteNotification(ctx context.Context, notificationID string) error {
	if err := c.repo.Delete(ctx, notificationID); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
