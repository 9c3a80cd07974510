package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ubvoting/election/internal/candidacy/domain"
	"github.com/ubvoting/election/pkg/logger"
)

// userRepositoryImpl 是 domain.UserRepository 接口的 GORM 实现。
type userRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储实例
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByStudentID 实现 domain.UserRepository.GetByStudentID，未找到时返回 nil, nil
func (r *userRepositoryImpl) GetByStudentID(ctx context.Context, studentID string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error(ctx, "user_repository.GetByStudentID failed", "student_id", studentID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Update 实现 domain.UserRepository.Update
func (r *userRepositoryImpl) Update(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Save(user).Error
	if err != nil {
		logger.Error(ctx, "user_repository.Update failed", "student_id", user.StudentID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
