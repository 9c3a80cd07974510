package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ubvoting/election/internal/candidacy/domain"
)

func TestListApplicationsFiltersByStatus(t *testing.T) {
	repo := newFakeApplicationRepo()
	repo.apps["a"] = &domain.Application{ApplicationID: "a", Status: domain.StatusPending}
	repo.apps["b"] = &domain.Application{ApplicationID: "b", Status: domain.StatusApproved}
	repo.apps["c"] = &domain.Application{ApplicationID: "c", Status: domain.StatusPending}

	q := NewApplicationQuery(repo)

	all, err := q.ListApplications(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := q.ListApplications(context.Background(), "pending")
	require.NoError(t, err)
	assert.Len(t, pending, 2)
	for _, app := range pending {
		assert.Equal(t, domain.StatusPending, app.Status)
	}
}

func TestGetApplicationNotFound(t *testing.T) {
	q := NewApplicationQuery(newFakeApplicationRepo())

	_, err := q.GetApplication(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrApplicationNotFound)
}

func TestGetApplicationReturnsRecord(t *testing.T) {
	repo := newFakeApplicationRepo()
	repo.apps["a"] = &domain.Application{ApplicationID: "a", StudentID: "2021-001", Status: domain.StatusPending}
	q := NewApplicationQuery(repo)

	app, err := q.GetApplication(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "2021-001", app.StudentID)
}
