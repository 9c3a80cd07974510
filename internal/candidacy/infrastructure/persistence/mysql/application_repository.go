// Package mysql 提供了候选申请仓储接口的 MySQL GORM 实现。
package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ubvoting/election/internal/candidacy/domain"
	"github.com/ubvoting/election/pkg/logger"
)

// applicationRepositoryImpl 是 domain.ApplicationRepository 接口的 GORM 实现。
type applicationRepositoryImpl struct {
	db *gorm.DB
}

// NewApplicationRepository 创建申请仓储实例
func NewApplicationRepository(db *gorm.DB) domain.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

// Save 实现 domain.ApplicationRepository.Save
func (r *applicationRepositoryImpl) Save(ctx context.Context, app *domain.Application) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}},
		UpdateAll: true,
	}).Create(app).Error
	if err != nil {
		logger.Error(ctx, "application_repository.Save failed", "application_id", app.ApplicationID, "error", err)
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}

// GetByApplicationID 实现 domain.ApplicationRepository.GetByApplicationID，未找到时返回 nil, nil
func (r *applicationRepositoryImpl) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	var app domain.Application
	err := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error(ctx, "application_repository.GetByApplicationID failed", "application_id", applicationID, "error", err)
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &app, nil
}

// List 实现 domain.ApplicationRepository.List
func (r *applicationRepositoryImpl) List(ctx context.Context) ([]*domain.Application, error) {
	var apps []*domain.Application
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		logger.Error(ctx, "application_repository.List failed", "error", err)
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// ListByStatus 实现 domain.ApplicationRepository.ListByStatus
func (r *applicationRepositoryImpl) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]*domain.Application, error) {
	var apps []*domain.Application
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		logger.Error(ctx, "application_repository.ListByStatus failed", "status", status, "error", err)
		return nil, fmt.Errorf("failed to list applications by status: %w", err)
	}
	return apps, nil
}
