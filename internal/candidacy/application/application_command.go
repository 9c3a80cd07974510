// Package application 候选人申请的命令与查询用例
package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ubvoting/election/internal/candidacy/domain"
	"github.com/ubvoting/election/pkg/logger"
)

// ApplicationCommand 处理申请提交与审核的命令操作
type ApplicationCommand struct {
	apps      domain.ApplicationRepository
	users     domain.UserRepository
	notifier  domain.Notifier
	mailer    domain.Mailer
	publisher domain.EventPublisher
}

// NewApplicationCommand 创建新的 ApplicationCommand 实例
func NewApplicationCommand(
	apps domain.ApplicationRepository,
	users domain.UserRepository,
	notifier domain.Notifier,
	mailer domain.Mailer,
	publisher domain.EventPublisher,
) *ApplicationCommand {
	return &ApplicationCommand{
		apps:      apps,
		users:     users,
		notifier:  notifier,
		mailer:    mailer,
		publisher: publisher,
	}
}

// SubmitApplication 提交申请，返回申请 ID。
// 通知与邮件为尽力而为：单个失败只记录日志，不影响提交结果。
func (c *ApplicationCommand) SubmitApplication(ctx context.Context, cmd SubmitApplicationCommand) (string, error) {
	app := &domain.Application{
		ApplicationID:   uuid.New().String(),
		StudentID:       cmd.StudentID,
		StudentName:     cmd.StudentName,
		Email:           cmd.Email,
		Position:        cmd.Position,
		Party:           cmd.Party,
		PartyName:       cmd.PartyName,
		Manifesto:       cmd.Manifesto,
		Qualifications:  cmd.Qualifications,
		Achievements:    cmd.Achievements,
		CampaignPromise: cmd.CampaignPromise,
		YearOfStudy:     cmd.YearOfStudy,
		Faculty:         cmd.Faculty,
		Status:          domain.StatusPending,
	}

	if err := c.apps.Save(ctx, app); err != nil {
		return "", fmt.Errorf("failed to save application: %w", err)
	}

	if c.publisher != nil {
		_ = c.publisher.Publish(ctx, domain.TopicApplicationSubmitted, app.ApplicationID, domain.ApplicationSubmittedEvent{
			ApplicationID: app.ApplicationID,
			StudentID:     app.StudentID,
			Position:      app.Position,
			Timestamp:     time.Now().UTC(),
		})
	}

	// 管理员与学生通知并发写入，两者都等待完成
	requests := []domain.NotificationRequest{
		{
			UserID:               domain.AdminUserID,
			UserType:             domain.AudienceAdmin,
			Title:                "New Candidate Application",
			Message:              fmt.Sprintf("Student %s has applied for %s as %s.", app.StudentName, app.Position, app.PartyName),
			Type:                 domain.NotificationTypeSubmitted,
			RelatedApplicationID: app.ApplicationID,
		},
		{
			UserID:               app.StudentID,
			UserType:             domain.AudienceStudent,
			Title:                "Application Submitted",
			Message:              fmt.Sprintf("Your application for %s has been received and is under review.", app.Position),
			Type:                 domain.NotificationTypeSubmitted,
			RelatedApplicationID: app.ApplicationID,
		},
	}

	var wg sync.WaitGroup
	for _, req := range requests {
		wg.Add(1)
		go func(req domain.NotificationRequest) {
			defer wg.Done()
			if err := c.notifier.Notify(ctx, req); err != nil {
				logger.Error(ctx, "Failed to create notification",
					"application_id", app.ApplicationID,
					"user_id", req.UserID,
					"error", err,
				)
			}
		}(req)
	}
	wg.Wait()

	if err := c.mailer.SendSubmissionConfirmation(ctx, app); err != nil {
		logger.Error(ctx, "Submission email failed", "application_id", app.ApplicationID, "error", err)
	}

	return app.ApplicationID, nil
}

// ReviewApplication 应用审核决定并触发对应的通知与邮件。
// 状态更新持久化后，批准分支的档案更新失败会向上返回；通知与邮件失败只记录日志。
func (c *ApplicationCommand) ReviewApplication(ctx context.Context, cmd ReviewApplicationCommand) error {
	app, err := c.apps.GetByApplicationID(ctx, cmd.ApplicationID)
	if err != nil {
		return fmt.Errorf("failed to get application: %w", err)
	}
	if app == nil {
		return domain.ErrApplicationNotFound
	}

	now := time.Now().UTC()
	app.Review(domain.ApplicationStatus(cmd.Status), cmd.ReviewedBy, cmd.RejectionReason, now)

	if err := c.apps.Save(ctx, app); err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	if c.publisher != nil {
		_ = c.publisher.Publish(ctx, domain.TopicApplicationReviewed, app.ApplicationID, domain.ApplicationReviewedEvent{
			ApplicationID: app.ApplicationID,
			StudentID:     app.StudentID,
			Status:        string(app.Status),
			ReviewedBy:    cmd.ReviewedBy,
			Timestamp:     now,
		})
	}

	switch app.Status {
	case domain.StatusApproved:
		if err := c.promoteCandidate(ctx, app, now); err != nil {
			return err
		}

		if err := c.notifier.Notify(ctx, domain.NotificationRequest{
			UserID:               app.StudentID,
			UserType:             domain.AudienceStudent,
			Title:                "Application Approved!",
			Message:              fmt.Sprintf("Congratulations! Your application for %s has been approved.", app.Position),
			Type:                 domain.NotificationTypeApproved,
			RelatedApplicationID: app.ApplicationID,
		}); err != nil {
			logger.Error(ctx, "Failed to create approval notification", "application_id", app.ApplicationID, "error", err)
		}

		if err := c.mailer.SendApprovalEmail(ctx, app); err != nil {
			logger.Error(ctx, "Approval email failed", "application_id", app.ApplicationID, "error", err)
		}

	case domain.StatusRejected:
		if err := c.notifier.Notify(ctx, domain.NotificationRequest{
			UserID:               app.StudentID,
			UserType:             domain.AudienceStudent,
			Title:                "Application Decision",
			Message:              fmt.Sprintf("Your application for %s was not approved. Reason: %s", app.Position, cmd.RejectionReason),
			Type:                 domain.NotificationTypeRejected,
			RelatedApplicationID: app.ApplicationID,
		}); err != nil {
			logger.Error(ctx, "Failed to create rejection notification", "application_id", app.ApplicationID, "error", err)
		}

		reason := cmd.RejectionReason
		if reason == "" {
			reason = "other"
		}
		if err := c.mailer.SendRejectionEmail(ctx, app, reason); err != nil {
			logger.Error(ctx, "Rejection email failed", "application_id", app.ApplicationID, "error", err)
		}
	}

	return nil
}

// promoteCandidate 将学生提升为候选人并填充档案
func (c *ApplicationCommand) promoteCandidate(ctx context.Context, app *domain.Application, at time.Time) error {
	user, err := c.users.GetByStudentID(ctx, app.StudentID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("failed to update candidate profile for student %s: %w", app.StudentID, domain.ErrUserNotFound)
	}

	user.PromoteToCandidate(app, at)
	if err := c.users.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update candidate profile: %w", err)
	}

	return nil
}
