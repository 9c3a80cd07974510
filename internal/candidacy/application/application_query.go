package application

import (
	"context"

	"github.com/ubvoting/election/internal/candidacy/domain"
)

// ApplicationQuery 处理申请相关的查询操作
type ApplicationQuery struct {
	apps domain.ApplicationRepository
}

// NewApplicationQuery 创建新的 ApplicationQuery 实例
func NewApplicationQuery(apps domain.ApplicationRepository) *ApplicationQuery {
	return &ApplicationQuery{apps: apps}
}

// ListApplications 按创建时间倒序返回申请，status 为空时返回全部
func (q *ApplicationQuery) ListApplications(ctx context.Context, status string) ([]*domain.Application, error) {
	if status == "" {
		return q.apps.List(ctx)
	}
	return q.apps.ListByStatus(ctx, domain.ApplicationStatus(status))
}

// GetApplication 按申请 ID 返回单条申请，不存在时返回 ErrApplicationNotFound
func (q *ApplicationQuery) GetApplication(ctx context.Context, applicationID string) (*domain.Application, error) {
	app, err := q.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrApplicationNotFound
	}
	return app, nil
}
