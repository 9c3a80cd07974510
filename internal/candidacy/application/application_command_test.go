package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubvoting/election/internal/candidacy/domain"
)

type fakeApplicationRepo struct {
	mu    sync.Mutex
	apps  map[string]*domain.Application
	err   error
	saves int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]*domain.Application)}
}

func (r *fakeApplicationRepo) Save(_ context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	copied := *app
	r.apps[app.ApplicationID] = &copied
	r.saves++
	return nil
}

func (r *fakeApplicationRepo) GetByApplicationID(_ context.Context, id string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	app, ok := r.apps[id]
	if !ok {
		return nil, nil
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) List(_ context.Context) ([]*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Application, 0, len(r.apps))
	for _, app := range r.apps {
		out = append(out, app)
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByStatus(_ context.Context, status domain.ApplicationStatus) ([]*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Application
	for _, app := range r.apps {
		if app.Status == status {
			out = append(out, app)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) GetByStudentID(_ context.Context, studentID string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[studentID]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[user.StudentID] = user
	return nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	requests []domain.NotificationRequest
	err      error
}

func (n *fakeNotifier) Notify(_ context.Context, req domain.NotificationRequest) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.requests = append(n.requests, req)
	return n.err
}

type fakeMailer struct {
	submitted []string
	approved  []string
	rejected  []string
	reasons   []string
	err       error
}

func (m *fakeMailer) SendSubmissionConfirmation(_ context.Context, app *domain.Application) error {
	m.submitted = append(m.submitted, app.ApplicationID)
	return m.err
}

func (m *fakeMailer) SendApprovalEmail(_ context.Context, app *domain.Application) error {
	m.approved = append(m.approved, app.ApplicationID)
	return m.err
}

func (m *fakeMailer) SendRejectionEmail(_ context.Context, app *domain.Application, reason string) error {
	m.rejected = append(m.rejected, app.ApplicationID)
	m.reasons = append(m.reasons, reason)
	return m.err
}

func submitCmd() SubmitApplicationCommand {
	return SubmitApplicationCommand{
		StudentID:   "2021-001",
		StudentName: "Jane Tan",
		Email:       "jane@ub.edu",
		Position:    "President",
		Party:       "unity",
		PartyName:   "Unity Party",
		Manifesto:   "Better campus life",
		YearOfStudy: "3",
		Faculty:     "Engineering",
	}
}

func TestSubmitApplicationCreatesPendingRecord(t *testing.T) {
	repo := newFakeApplicationRepo()
	notifier := &fakeNotifier{}
	mailer := &fakeMailer{}
	svc := NewApplicationCommand(repo, newFakeUserRepo(), notifier, mailer, nil)

	id, err := svc.SubmitApplication(context.Background(), submitCmd())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	app, err := repo.GetByApplicationID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, domain.StatusPending, app.Status)
	assert.Equal(t, "2021-001", app.StudentID)
	assert.Nil(t, app.ReviewedAt)
	assert.Empty(t, app.ReviewedBy)
}

func TestSubmitApplicationNotifiesAdminAndStudent(t *testing.T) {
	repo := newFakeApplicationRepo()
	notifier := &fakeNotifier{}
	mailer := &fakeMailer{}
	svc := NewApplicationCommand(repo, newFakeUserRepo(), notifier, mailer, nil)

	id, err := svc.SubmitApplication(context.Background(), submitCmd())
	require.NoError(t, err)

	require.Len(t, notifier.requests, 2)
	recipients := map[string]domain.NotificationRequest{}
	for _, req := range notifier.requests {
		recipients[req.UserID] = req
	}

	adminReq, ok := recipients[domain.AdminUserID]
	require.True(t, ok)
	assert.Equal(t, domain.AudienceAdmin, adminReq.UserType)
	assert.Equal(t, "New Candidate Application", adminReq.Title)
	assert.Equal(t, domain.NotificationTypeSubmitted, adminReq.Type)
	assert.Equal(t, id, adminReq.RelatedApplicationID)

	studentReq, ok := recipients["2021-001"]
	require.True(t, ok)
	assert.Equal(t, domain.AudienceStudent, studentReq.UserType)
	assert.Equal(t, "Application Submitted", studentReq.Title)
	assert.Contains(t, studentReq.Message, "President")
}

func TestSubmitApplicationSideEffectFailuresDoNotFailSubmission(t *testing.T) {
	repo := newFakeApplicationRepo()
	notifier := &fakeNotifier{err: errors.New("notification store down")}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewApplicationCommand(repo, newFakeUserRepo(), notifier, mailer, nil)

	id, err := svc.SubmitApplication(context.Background(), submitCmd())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// 两条通知都必须尝试写入，邮件也必须尝试发送
	assert.Len(t, notifier.requests, 2)
	assert.Len(t, mailer.submitted, 1)
}

func TestSubmitApplicationSaveFailureSurfaces(t *testing.T) {
	repo := newFakeApplicationRepo()
	repo.err = errors.New("db down")
	svc := NewApplicationCommand(repo, newFakeUserRepo(), &fakeNotifier{}, &fakeMailer{}, nil)

	_, err := svc.SubmitApplication(context.Background(), submitCmd())
	require.Error(t, err)
}

func TestReviewApplicationApprove(t *testing.T) {
	repo := newFakeApplicationRepo()
	users := newFakeUserRepo()
	users.users["2021-001"] = &domain.User{StudentID: "2021-001", Name: "Jane Tan"}
	notifier := &fakeNotifier{}
	mailer := &fakeMailer{}
	svc := NewApplicationCommand(repo, users, notifier, mailer, nil)

	id, err := svc.SubmitApplication(context.Background(), submitCmd())
	require.NoError(t, err)
	notifier.requests = nil

	err = svc.ReviewApplication(context.Background(), ReviewApplicationCommand{
		ApplicationID: id,
		Status:        "approved",
		ReviewedBy:    "admin",
	})
	require.NoError(t, err)

	app, _ := repo.GetByApplicationID(context.Background(), id)
	assert.Equal(t, domain.StatusApproved, app.Status)
	assert.Equal(t, "admin", app.ReviewedBy)
	require.NotNil(t, app.ReviewedAt)

	user := users.users["2021-001"]
	assert.True(t, user.IsCandidate)
	assert.True(t, user.CandidateActive)
	assert.Equal(t, "President", user.ApprovedPosition)
	assert.Equal(t, "Unity Party", user.PartyName)
	require.NotNil(t, user.ApprovedAt)

	require.Len(t, notifier.requests, 1)
	assert.Equal(t, "Application Approved!", notifier.requests[0].Title)
	assert.Equal(t, domain.NotificationTypeApproved, notifier.requests[0].Type)
	assert.Len(t, mailer.approved, 1)
}

func TestReviewApplicationReject(t *testing.T) {
	repo := newFakeApplicationRepo()
	notifier := &fakeNotifier{}
	mailer := &fakeMailer{}
	svc := NewApplicationCommand(repo, newFakeUserRepo(), notifier, mailer, nil)

	id, err := svc.SubmitApplication(context.Background(), submitCmd())
	require.NoError(t, err)
	notifier.requests = nil

	err = svc.ReviewApplication(context.Background(), ReviewApplicationCommand{
		ApplicationID:   id,
		Status:          "rejected",
		ReviewedBy:      "admin",
		RejectionReason: "incomplete_application",
	})
	require.NoError(t, err)

	app, _ := repo.GetByApplicationID(context.Background(), id)
	assert.Equal(t, domain.StatusRejected, app.Status)
	assert.Equal(t, "incomplete_application", app.RejectionReason)

	require.Len(t, notifier.requests, 1)
	assert.Equal(t, "Application Decision", notifier.requests[0].Title)
	assert.Contains(t, notifier.requests[0].Message, "incomplete_application")

	require.Len(t, mailer.reasons, 1)
	assert.Equal(t, "incomplete_application", mailer.reasons[0])
}

func TestReviewApplicationRejectWithoutReason(t *testing.T) {
	repo := newFakeApplicationRepo()
	mailer := &fakeMailer{}
	svc := NewApplicationCommand(repo, newFakeUserRepo(), &fakeNotifier{}, mailer, nil)

	id, err := svc.SubmitApplication(context.Background(), submitCmd())
	require.NoError(t, err)

	err = svc.ReviewApplication(context.Background(), ReviewApplicationCommand{
		ApplicationID: id,
		Status:        "rejected",
		ReviewedBy:    "admin",
	})
	require.NoError(t, err)

	app, _ := repo.GetByApplicationID(context.Background(), id)
	assert.Empty(t, app.RejectionReason)

	// 邮件落到通用拒绝说明
	require.Len(t, mailer.reasons, 1)
	assert.Equal(t, "other", mailer.reasons[0])
}

func TestReviewApplicationNotFound(t *testing.T) {
	svc := NewApplicationCommand(newFakeApplicationRepo(), newFakeUserRepo(), &fakeNotifier{}, &fakeMailer{}, nil)

	err := svc.ReviewApplication(context.Background(), ReviewApplicationCommand{
		ApplicationID: "missing",
		Status:        "approved",
		ReviewedBy:    "admin",
	})
	require.ErrorIs(t, err, domain.ErrApplicationNotFound)
}

func TestReviewApplicationApproveMissingUserSurfaces(t *testing.T) {
	repo := newFakeApplicationRepo()
	svc := NewApplicationCommand(repo, newFakeUserRepo(), &fakeNotifier{}, &fakeMailer{}, nil)

	id, err := svc.SubmitApplication(context.Background(), submitCmd())
	require.NoError(t, err)

	err = svc.ReviewApplication(context.Background(), ReviewApplicationCommand{
		ApplicationID: id,
		Status:        "approved",
		ReviewedBy:    "admin",
	})
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	// 档案更新失败前状态已持久化
	app, _ := repo.GetByApplicationID(context.Background(), id)
	assert.Equal(t, domain.StatusApproved, app.Status)
}
