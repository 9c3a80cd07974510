// Package domain 站内通知的领域模型
package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// UserType 通知受众类型
type UserType string

const (
	UserTypeStudent UserType = "student"
	UserTypeAdmin   UserType = "admin"
)

// Notification 站内通知实体
type Notification struct {
	gorm.Model
	// NotificationID 通知 ID
	NotificationID string `gorm:"column:notification_id;type:varchar(64);uniqueIndex;not null" json:"notification_id"`
	// UserID 收件用户 ID
	UserID string `gorm:"column:user_id;type:varchar(32);index;not null" json:"user_id"`
	// UserType 收件用户类型
	UserType UserType `gorm:"column:user_type;type:varchar(20);index;not null" json:"user_type"`
	// Title 通知标题
	Title string `gorm:"column:title;type:varchar(200);not null" json:"title"`
	// Message 通知正文
	Message string `gorm:"column:message;type:text" json:"message"`
	// Type 通知类型标签
	Type string `gorm:"column:type;type:varchar(50);not null" json:"type"`
	// IsRead 是否已读
	IsRead bool `gorm:"column:is_read;not null;default:false" json:"is_read"`
	// ReadAt 已读时间，仅已读时有值
	ReadAt *time.Time `gorm:"column:read_at;type:datetime" json:"read_at"`
	// RelatedApplicationID 关联申请 ID（可为空）
	RelatedApplicationID string `gorm:"column:related_application_id;type:varchar(64);index" json:"related_application_id"`
}

func (Notification) TableName() string { return "notifications" }

// MarkRead 标记为已读
func (n *Notification) MarkRead(at time.Time) {
	n.IsRead = true
	n.ReadAt = &at
}

// NotificationRepository 通知仓储接口
type NotificationRepository interface {
	Save(ctx context.Context, notification *Notification) error
	ListByUser(ctx context.Context, userID string, userType UserType) ([]*Notification, error)
	CountUnread(ctx context.Context, userID string, userType UserType) (int64, error)
	MarkRead(ctx context.Context, notificationID string, at time.Time) error
	Delete(ctx context.Context, notificationID string) error
}
