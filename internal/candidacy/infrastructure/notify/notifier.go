// Package notify 将候选上下文的通知端口接到通知服务的写入用例
package notify

import (
	"context"

	candidacy "github.com/ubvoting/election/internal/candidacy/domain"
	notification "github.com/ubvoting/election/internal/notification/application"
	"github.com/ubvoting/election/pkg/metrics"
)

// ServiceNotifier 通过进程内的通知命令服务写入站内通知
type ServiceNotifier struct {
	command *notification.NotificationCommand
	metrics *metrics.Metrics
}

// NewServiceNotifier 创建 ServiceNotifier 实例
func NewServiceNotifier(command *notification.NotificationCommand, m *metrics.Metrics) *ServiceNotifier {
	return &ServiceNotifier{command: command, metrics: m}
}

// Notify 实现 candidacy.Notifier
func (n *ServiceNotifier) Notify(ctx context.Context, req candidacy.NotificationRequest) error {
	_, err := n.command.CreateNotification(ctx, notification.CreateNotificationCommand{
		UserID:               req.UserID,
		UserType:             req.UserType,
		Title:                req.Title,
		Message:              req.Message,
		Type:                 req.Type,
		RelatedApplicationID: req.RelatedApplicationID,
	})
	if err != nil {
		return err
	}
	if n.metrics != nil {
		n.metrics.NotificationsCreatedTotal.Inc()
	}
	return nil
}

var _ candidacy.Notifier = (*ServiceNotifier)(nil)
