package contract

import (
	"context"
	"time"

	"github.com/braxton-quillin/oss-dashboard/schema"
	"github.com/stretchr/testify/mock"
)

// MockRepoClient is a testify mock of the RepoClient interface.
// This allows the pipeline to be tested without touching the remote API.
type MockRepoClient struct {
	mock.Mock
}

var _ RepoClient = (*MockRepoClient)(nil) // Compile-time check

// RemainingRequests implements the RepoClient interface.
func (m *MockRepoClient) RemainingRequests(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// GetRepository implements the RepoClient interface.
func (m *MockRepoClient) GetRepository(ctx context.Context, owner, name string) (*schema.Repository, error) {
	args := m.Called(ctx, owner, name)
	if repo := args.Get(0); repo != nil {
		return repo.(*schema.Repository), args.Error(1)
	}
	return nil, args.Error(1)
}

// ListClosedIssues implements the RepoClient interface.
func (m *MockRepoClient) ListClosedIssues(ctx context.Context, owner, name string, limit int) ([]schema.Issue, error) {
	args := m.Called(ctx, owner, name, limit)
	if issues := args.Get(0); issues != nil {
		return issues.([]schema.Issue), args.Error(1)
	}
	return nil, args.Error(1)
}

// ListOpenIssues implements the RepoClient interface.
func (m *MockRepoClient) ListOpenIssues(ctx context.Context, owner, name string) ([]schema.Issue, error) {
	args := m.Called(ctx, owner, name)
	if issues := args.Get(0); issues != nil {
		return issues.([]schema.Issue), args.Error(1)
	}
	return nil, args.Error(1)
}

// ListClosedPulls implements the RepoClient interface.
func (m *MockRepoClient) ListClosedPulls(ctx context.Context, owner, name string, limit int) ([]schema.PullRequest, error) {
	args := m.Called(ctx, owner, name, limit)
	if pulls := args.Get(0); pulls != nil {
		return pulls.([]schema.PullRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

// FirstCommentTime implements the RepoClient interface.
func (m *MockRepoClient) FirstCommentTime(ctx context.Context, owner, name string, number int) (time.Time, error) {
	args := m.Called(ctx, owner, name, number)
	return args.Get(0).(time.Time), args.Error(1)
}

// ContributorCount implements the RepoClient interface.
func (m *MockRepoClient) ContributorCount(ctx context.Context, owner, name string) (int, error) {
	args := m.Called(ctx, owner, name)
	return args.Int(0), args.Error(1)
}

// ContributorStats implements the RepoClient interface.
func (m *MockRepoClient) ContributorStats(ctx context.Context, owner, name string) ([]schema.ContributorStat, error) {
	args := m.Called(ctx, owner, name)
	if stats := args.Get(0); stats != nil {
		return stats.([]schema.ContributorStat), args.Error(1)
	}
	return nil, args.Error(1)
}

// CommunityHealth implements the RepoClient interface.
func (m *MockRepoClient) CommunityHealth(ctx context.Context, owner, name string) (int, error) {
	args := m.Called(ctx, owner, name)
	return args.Int(0), args.Error(1)
}
