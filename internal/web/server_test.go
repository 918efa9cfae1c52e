package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/braxton-quillin/oss-dashboard/internal/web"
	"github.com/braxton-quillin/oss-dashboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serveRequest(t *testing.T, client contract.RepoClient, target string) *httptest.ResponseRecorder {
	t.Helper()
	srv, err := web.NewServer(client)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func TestDashboardSearchForm(t *testing.T) {
	client := new(contract.MockRepoClient)
	rec := serveRequest(t, client, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Repository Health Dashboard")
	assert.Contains(t, rec.Body.String(), `name="repo"`)
	client.AssertNotCalled(t, "RemainingRequests", mock.Anything)
}

func TestDashboardRendersReport(t *testing.T) {
	pushed := time.Date(2024, 2, 20, 9, 30, 0, 0, time.UTC)
	client := new(contract.MockRepoClient)
	client.On("RemainingRequests", mock.Anything).Return(5000, nil)
	client.On("GetRepository", mock.Anything, "octo", "demo").Return(&schema.Repository{
		FullName:    "octo/demo",
		Stars:       42,
		Forks:       7,
		OpenIssues:  3,
		Language:    "Go",
		LicenseName: "MIT",
		PushedAt:    &pushed,
	}, nil)
	client.On("ListClosedIssues", mock.Anything, "octo", "demo", schema.SampleLimit).
		Return([]schema.Issue{}, nil)
	client.On("ListOpenIssues", mock.Anything, "octo", "demo").
		Return([]schema.Issue{}, nil)
	client.On("ListClosedPulls", mock.Anything, "octo", "demo", schema.SampleLimit).
		Return([]schema.PullRequest{}, nil)
	client.On("ContributorCount", mock.Anything, "octo", "demo").Return(12, nil)
	client.On("ContributorStats", mock.Anything, "octo", "demo").
		Return([]schema.ContributorStat{
			{Author: "alice", WeeklyAdditions: []int{100}},
			{Author: "bob", WeeklyAdditions: []int{100}},
		}, nil)
	client.On("CommunityHealth", mock.Anything, "octo", "demo").Return(85, nil)

	rec := serveRequest(t, client, "/?repo=octo%2Fdemo")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "octo/demo")
	assert.Contains(t, body, "42 stars")
	assert.Contains(t, body, "Feb 20, 2024")
	assert.Contains(t, body, "Rate limit remaining: 5000")
	assert.NotContains(t, body, "alert-danger")
}

func TestDashboardRendersFailure(t *testing.T) {
	client := new(contract.MockRepoClient)
	client.On("RemainingRequests", mock.Anything).Return(2, nil)

	rec := serveRequest(t, client, "/?repo=octo%2Fdemo")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alert-danger")
	assert.Contains(t, rec.Body.String(), "API rate limit warning")
	client.AssertNotCalled(t, "GetRepository", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardUnknownPath(t *testing.T) {
	client := new(contract.MockRepoClient)
	rec := serveRequest(t, client, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	client := new(contract.MockRepoClient)
	rec := serveRequest(t, client, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}
