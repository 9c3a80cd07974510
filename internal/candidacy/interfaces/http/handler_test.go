package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubvoting/election/internal/candidacy/application"
	"github.com/ubvoting/election/internal/candidacy/domain"
)

type stubApplicationRepo struct {
	apps map[string]*domain.Application
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[string]*domain.Application)}
}

func (r *stubApplicationRepo) Save(_ context.Context, app *domain.Application) error {
	copied := *app
	r.apps[app.ApplicationID] = &copied
	return nil
}

func (r *stubApplicationRepo) GetByApplicationID(_ context.Context, id string) (*domain.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, nil
	}
	return app, nil
}

func (r *stubApplicationRepo) List(_ context.Context) ([]*domain.Application, error) {
	out := make([]*domain.Application, 0, len(r.apps))
	for _, app := range r.apps {
		out = append(out, app)
	}
	return out, nil
}

func (r *stubApplicationRepo) ListByStatus(_ context.Context, status domain.ApplicationStatus) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, app := range r.apps {
		if app.Status == status {
			out = append(out, app)
		}
	}
	return out, nil
}

type stubUserRepo struct{}

func (stubUserRepo) GetByStudentID(_ context.Context, studentID string) (*domain.User, error) {
	return &domain.User{StudentID: studentID}, nil
}

func (stubUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }

type stubNotifier struct{}

func (stubNotifier) Notify(_ context.Context, _ domain.NotificationRequest) error { return nil }

type stubMailer struct{}

func (stubMailer) SendSubmissionConfirmation(_ context.Context, _ *domain.Application) error {
	return nil
}
func (stubMailer) SendApprovalEmail(_ context.Context, _ *domain.Application) error { return nil }
func (stubMailer) SendRejectionEmail(_ context.Context, _ *domain.Application, _ string) error {
	return nil
}

func newTestRouter(repo *stubApplicationRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	command := application.NewApplicationCommand(repo, stubUserRepo{}, stubNotifier{}, stubMailer{}, nil)
	query := application.NewApplicationQuery(repo)
	handler := NewApplicationHandler(command, query, nil)

	r := gin.New()
	handler.RegisterRoutes(r.Group("/api"))
	return r
}

func submitBody() map[string]any {
	return map[string]any{
		"studentId":   "2021-001",
		"studentName": "Jane Tan",
		"email":       "jane@ub.edu",
		"position":    "President",
		"party":       "unity",
		"partyName":   "Unity Party",
		"manifesto":   "Better campus life",
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitApplicationEndpoint(t *testing.T) {
	repo := newStubApplicationRepo()
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/candidate-applications", submitBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Application submitted successfully", resp["message"])
	assert.Equal(t, "pending", resp["status"])
	assert.NotEmpty(t, resp["application_id"])
}

func TestSubmitApplicationEndpointRejectsMissingFields(t *testing.T) {
	r := newTestRouter(newStubApplicationRepo())

	body := submitBody()
	delete(body, "studentId")
	w := doJSON(t, r, http.MethodPost, "/api/candidate-applications", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetApplicationEndpointNotFound(t *testing.T) {
	r := newTestRouter(newStubApplicationRepo())

	w := doJSON(t, r, http.MethodGet, "/api/candidate-applications/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Application not found", resp["error"])
}

func TestListApplicationsEndpointFiltersByStatus(t *testing.T) {
	repo := newStubApplicationRepo()
	repo.apps["a"] = &domain.Application{ApplicationID: "a", Status: domain.StatusPending}
	repo.apps["b"] = &domain.Application{ApplicationID: "b", Status: domain.StatusApproved}
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/api/candidate-applications?status=approved", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "b", resp[0]["application_id"])
}

func TestReviewApplicationEndpoint(t *testing.T) {
	repo := newStubApplicationRepo()
	r := newTestRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/candidate-applications", submitBody())
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["application_id"].(string)

	w = doJSON(t, r, http.MethodPut, "/api/candidate-applications/"+id, map[string]any{
		"status":      "approved",
		"reviewed_by": "admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Application approved successfully", resp["message"])

	app := repo.apps[id]
	assert.Equal(t, domain.StatusApproved, app.Status)
}

func TestReviewApplicationEndpointValidatesStatus(t *testing.T) {
	r := newTestRouter(newStubApplicationRepo())

	w := doJSON(t, r, http.MethodPut, "/api/candidate-applications/any", map[string]any{
		"status":      "archived",
		"reviewed_by": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewApplicationEndpointNotFound(t *testing.T) {
	r := newTestRouter(newStubApplicationRepo())

	w := doJSON(t, r, http.MethodPut, "/api/candidate-applications/missing", map[string]any{
		"status":      "rejected",
		"reviewed_by": "admin",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
