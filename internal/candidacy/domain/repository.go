package domain

import (
	"context"
	"errors"
)

// ErrApplicationNotFound 申请不存在
var ErrApplicationNotFound = errors.New("candidate application not found")

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("user not found")

// ApplicationRepository 申请仓储接口
type ApplicationRepository interface {
	Save(ctx context.Context, app *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	List(ctx context.Context) ([]*Application, error)
	ListByStatus(ctx context.Context, status ApplicationStatus) ([]*Application, error)
}

// UserRepository 用户仓储接口
type UserRepository interface {
	GetByStudentID(ctx context.Context, studentID string) (*User, error)
	Update(ctx context.Context, user *User) error
}
