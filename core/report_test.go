package core

import (
	"context"
	"testing"
	"time"

	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/braxton-quillin/oss-dashboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// validBands is the closed set every classified dimension must resolve to.
var validBands = map[schema.SeverityBand]struct{}{
	schema.FavorableBand:   {},
	schema.ModerateBand:    {},
	schema.UnfavorableBand: {},
	schema.UnknownBand:     {},
}

// TestBuildHealthReportQuotaGuard ensures a near-exhausted budget halts the
// pipeline before any other remote call.
func TestBuildHealthReportQuotaGuard(t *testing.T) {
	for _, remaining := range []int{0, 1, 4} {
		client := new(contract.MockRepoClient)
		client.On("RemainingRequests", mock.Anything).Return(remaining, nil)

		report := BuildHealthReport(context.Background(), client, "octo/demo")

		require.True(t, report.Failed())
		assert.Contains(t, report.Error, "rate limit")
		assert.Equal(t, remaining, report.RateLimitRemaining)
		client.AssertNotCalled(t, "GetRepository", mock.Anything, mock.Anything, mock.Anything)
		client.AssertNotCalled(t, "ListClosedIssues", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

// TestBuildHealthReportBudgetBoundary ensures exactly 5 remaining requests
// proceeds past the guard.
func TestBuildHealthReportBudgetBoundary(t *testing.T) {
	client := new(contract.MockRepoClient)
	client.On("RemainingRequests", mock.Anything).Return(5, nil)
	client.On("GetRepository", mock.Anything, "octo", "demo").
		Return(nil, &contract.RemoteError{StatusCode: 404})

	report := BuildHealthReport(context.Background(), client, "octo/demo")
	assert.NotContains(t, report.Error, "rate limit")
	client.AssertCalled(t, "GetRepository", mock.Anything, "octo", "demo")
}

// TestBuildHealthReportUnresolvable ensures resolver failures produce an
// error-only report that embeds the platform status.
func TestBuildHealthReportUnresolvable(t *testing.T) {
	client := new(contract.MockRepoClient)
	client.On("RemainingRequests", mock.Anything).Return(5000, nil)
	client.On("GetRepository", mock.Anything, "octo", "ghost").
		Return(nil, &contract.RemoteError{StatusCode: 404, Message: "Not Found"})

	report := BuildHealthReport(context.Background(), client, "octo/ghost")

	require.True(t, report.Failed())
	assert.Contains(t, report.Error, "404")
	assert.Equal(t, 5000, report.RateLimitRemaining)
	client.AssertNotCalled(t, "ListClosedIssues", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestBuildHealthReportInvalidIdentifier rejects malformed identifiers
// without issuing a resolve call.
func TestBuildHealthReportInvalidIdentifier(t *testing.T) {
	for _, repoID := range []string{"", "octo", "octo/", "/demo", "a/b/c"} {
		client := new(contract.MockRepoClient)
		client.On("RemainingRequests", mock.Anything).Return(5000, nil)

		report := BuildHealthReport(context.Background(), client, repoID)

		require.True(t, report.Failed(), "identifier %q should fail", repoID)
		client.AssertNotCalled(t, "GetRepository", mock.Anything, mock.Anything, mock.Anything)
	}
}

// TestBuildHealthReportSuccess runs the full pipeline against a healthy mock
// and checks every field of the resulting snapshot.
func TestBuildHealthReportSuccess(t *testing.T) {
	pushed := time.Date(2024, 2, 20, 9, 30, 0, 0, time.UTC)
	client := new(contract.MockRepoClient)
	client.On("RemainingRequests", mock.Anything).Return(4800, nil)
	client.On("GetRepository", mock.Anything, "octo", "demo").Return(&schema.Repository{
		FullName:    "octo/demo",
		Stars:       1200,
		Forks:       340,
		OpenIssues:  25,
		Language:    "Go",
		LicenseName: "MIT License",
		PushedAt:    &pushed,
	}, nil)

	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	client.On("ListClosedIssues", mock.Anything, "octo", "demo", schema.SampleLimit).
		Return([]schema.Issue{{Number: 7, CreatedAt: created, CommentCount: 2}}, nil)
	client.On("FirstCommentTime", mock.Anything, "octo", "demo", 7).
		Return(created.Add(12*time.Hour), nil)
	client.On("ListOpenIssues", mock.Anything, "octo", "demo").
		Return([]schema.Issue{{Number: 8, CreatedAt: time.Now().UTC().Add(-48 * time.Hour)}}, nil)
	client.On("ListClosedPulls", mock.Anything, "octo", "demo", schema.SampleLimit).
		Return([]schema.PullRequest{{
			Number:    9,
			CreatedAt: created,
			MergedAt:  timePtr(created.Add(24 * time.Hour)),
		}}, nil)
	client.On("ContributorCount", mock.Anything, "octo", "demo").Return(15, nil)
	client.On("ContributorStats", mock.Anything, "octo", "demo").
		Return(statsFor(10, 10, 10, 10), nil)
	client.On("CommunityHealth", mock.Anything, "octo", "demo").Return(90, nil)

	report := BuildHealthReport(context.Background(), client, "octo/demo")

	require.False(t, report.Failed())
	assert.Equal(t, "octo/demo", report.RepoName)
	assert.Equal(t, 1200, report.Stars)
	assert.Equal(t, 340, report.Forks)
	assert.Equal(t, 25, report.OpenIssues)
	assert.Equal(t, "Go", report.Language)
	assert.Equal(t, "MIT License", report.License)
	assert.Equal(t, "Feb 20, 2024", report.LastCommitDate)
	assert.Equal(t, 4800, report.RateLimitRemaining)

	assert.Equal(t, 12.0, report.ResponseTimeHours.Value)
	assert.InDelta(t, 2.0, report.IssueAgeDays.Value, 0.1)
	assert.Equal(t, 1.0, report.PRLatencyDays.Value)
	assert.Equal(t, 15.0, report.TotalContributors.Value)
	assert.Equal(t, 2.0, report.BusFactor.Value)
	assert.Equal(t, 90, report.HealthPercentage)

	assert.Equal(t, schema.FavorableBand, report.ResponseTimeBand)
	assert.Equal(t, schema.FavorableBand, report.IssueAgeBand)
	assert.Equal(t, schema.FavorableBand, report.LatencyBand)
	assert.Equal(t, schema.UnfavorableBand, report.BusFactorBand)
	assert.Equal(t, schema.FavorableBand, report.HealthBand)

	for _, band := range []schema.SeverityBand{
		report.BusFactorBand, report.ResponseTimeBand, report.LatencyBand,
		report.HealthBand, report.IssueAgeBand,
	} {
		_, ok := validBands[band]
		assert.True(t, ok, "band %q outside the valid set", band)
	}
	client.AssertExpectations(t)
}

// TestBuildHealthReportPartialFailure ensures metric-level failures never
// abort the snapshot: failed collectors report sentinels, the rest compute.
func TestBuildHealthReportPartialFailure(t *testing.T) {
	client := new(contract.MockRepoClient)
	client.On("RemainingRequests", mock.Anything).Return(4800, nil)
	client.On("GetRepository", mock.Anything, "octo", "demo").Return(&schema.Repository{
		FullName: "octo/demo",
	}, nil)
	client.On("ListClosedIssues", mock.Anything, "octo", "demo", schema.SampleLimit).
		Return(nil, assertableError("issues down"))
	client.On("ListOpenIssues", mock.Anything, "octo", "demo").
		Return(nil, assertableError("issues down"))
	client.On("ListClosedPulls", mock.Anything, "octo", "demo", schema.SampleLimit).
		Return([]schema.PullRequest{}, nil)
	client.On("ContributorCount", mock.Anything, "octo", "demo").
		Return(0, contract.ErrStatsProcessing)
	client.On("CommunityHealth", mock.Anything, "octo", "demo").
		Return(0, assertableError("profile down"))

	report := BuildHealthReport(context.Background(), client, "octo/demo")

	require.False(t, report.Failed())
	assert.Equal(t, schema.MetricUnavailable, report.ResponseTimeHours.State)
	assert.Equal(t, schema.MetricUnavailable, report.IssueAgeDays.State)
	assert.Equal(t, schema.MetricUnavailable, report.PRLatencyDays.State)
	assert.Equal(t, schema.MetricProcessing, report.TotalContributors.State)
	assert.Equal(t, schema.MetricProcessing, report.BusFactor.State)
	assert.Equal(t, 0, report.HealthPercentage)

	assert.Equal(t, schema.UnknownBand, report.ResponseTimeBand)
	assert.Equal(t, schema.UnknownBand, report.IssueAgeBand)
	assert.Equal(t, schema.UnknownBand, report.LatencyBand)
	assert.Equal(t, schema.UnknownBand, report.BusFactorBand)
	assert.Equal(t, schema.UnfavorableBand, report.HealthBand)

	assert.Equal(t, schema.UnknownLanguage, report.Language)
	assert.Equal(t, schema.UnspecifiedLicense, report.License)
	assert.Equal(t, schema.UnavailableDate, report.LastCommitDate)
}

// TestSplitRepoID checks identifier parsing.
func TestSplitRepoID(t *testing.T) {
	tests := []struct {
		repoID string
		owner  string
		name   string
		ok     bool
	}{
		{"octo/demo", "octo", "demo", true},
		{" octo/demo ", "octo", "demo", true},
		{"octo", "", "", false},
		{"octo/", "", "", false},
		{"/demo", "", "", false},
		{"a/b/c", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.repoID, func(t *testing.T) {
			owner, name, ok := splitRepoID(tt.repoID)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.name, name)
		})
	}
}

// assertableError builds a plain error for failure-path mocks.
func assertableError(msg string) error {
	return &contract.RemoteError{StatusCode: 500, Message: msg}
}
