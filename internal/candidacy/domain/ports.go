package domain

import "context"

// NotificationType 通知类型标签
const (
	NotificationTypeSubmitted = "application_submitted"
	NotificationTypeApproved  = "application_approved"
	NotificationTypeRejected  = "application_rejected"
)

// 通知受众
const (
	AudienceStudent = "student"
	AudienceAdmin   = "admin"
)

// AdminUserID 管理员通知的固定收件人
const AdminUserID = "admin"

// NotificationRequest 站内通知写入请求
type NotificationRequest struct {
	UserID               string
	UserType             string
	Title                string
	Message              string
	Type                 string
	RelatedApplicationID string
}

// Notifier 站内通知端口
type Notifier interface {
	Notify(ctx context.Context, req NotificationRequest) error
}

// Mailer 生命周期邮件端口。凭证缺失时实现应跳过发送并返回 nil。
type Mailer interface {
	SendSubmissionConfirmation(ctx context.Context, app *Application) error
	SendApprovalEmail(ctx context.Context, app *Application) error
	SendRejectionEmail(ctx context.Context, app *Application, reasonCode string) error
}

// EmailSender SMTP 发送端口
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
