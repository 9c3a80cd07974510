// Package mysql 提供了通知仓储接口的 MySQL GORM 实现。
package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ubvoting/election/internal/notification/domain"
	"github.com/ubvoting/election/pkg/logger"
)

// notificationRepositoryImpl 是 domain.NotificationRepository 接口的 GORM 实现。
type notificationRepositoryImpl struct {
	db *gorm.DB
}

// NewNotificationRepository 创建通知仓储实例
func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

// Save 实现 domain.NotificationRepository.Save
func (r *notificationRepositoryImpl) Save(ctx context.Context, n *domain.Notification) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "notification_id"}},
		UpdateAll: true,
	}).Create(n).Error
	if err != nil {
		logger.Error(ctx, "notification_repository.Save failed", "notification_id", n.NotificationID, "error", err)
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

// ListByUser 实现 domain.NotificationRepository.ListByUser
func (r *notificationRepositoryImpl) ListByUser(ctx context.Context, userID string, userType domain.UserType) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND user_type = ?", userID, userType).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		logger.Error(ctx, "notification_repository.ListByUser failed", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// CountUnread 实现 domain.NotificationRepository.CountUnread
func (r *notificationRepositoryImpl) CountUnread(ctx context.Context, userID string, userType domain.UserType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("user_id = ? AND user_type = ? AND is_read = ?", userID, userType, false).
		Count(&count).Error
	if err != nil {
		logger.Error(ctx, "notification_repository.CountUnread failed", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead 实现 domain.NotificationRepository.MarkRead。零行匹配视为无操作成功。
func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, notificationID string, at time.Time) error {
	err := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("notification_id = ?", notificationID).
		Updates(map[string]any{"is_read": true, "read_at": at}).Error
	if err != nil {
		logger.Error(ctx, "notification_repository.MarkRead failed", "notification_id", notificationID, "error", err)
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// Delete 实现 domain.NotificationRepository.Delete
func (r *notificationRepositoryImpl) Delete(ctx context.Context, notificationID string) error {
	err := r.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		Delete(&domain.Notification{}).Error
	if err != nil {
		logger.Error(ctx, "notification_repository.Delete failed", "notification_id", notificationID, "error", err)
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
