package application

import (
	"context"

	"github.com/ubvoting/election/internal/notification/domain"
)

// NotificationQuery 处理通知相关的查询操作
type NotificationQuery struct {
	repo domain.NotificationRepository
}

// NewNotificationQuery 创建新的 NotificationQuery 实例
func NewNotificationQuery(repo domain.NotificationRepository) *NotificationQuery {
	return &NotificationQuery{repo: repo}
}

// ListForUser 按创建时间倒序返回用户的全部通知
func (q *NotificationQuery) ListForUser(ctx context.Context, userID, userType string) ([]*domain.Notification, error) {
	return q.repo.ListByUser(ctx, userID, domain.UserType(userType))
}

// CountUnread 返回用户未读通知数量
func (q *NotificationQuery) CountUnread(ctx context.Context, userID, userType string) (int64, error) {
	return q.repo.CountUnread(ctx, userID, domain.UserType(userType))
}
