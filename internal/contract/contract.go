// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/braxton-quillin/oss-dashboard/schema"
)

// RepoClient defines the remote platform operations the health pipeline needs.
// Bounded fetches take an explicit limit so that pagination mechanics never
// leak into the collectors. All methods count against the platform's request
// budget, which is why the pipeline checks RemainingRequests first.
type RepoClient interface {
	// RemainingRequests returns the remaining API call budget.
	RemainingRequests(ctx context.Context) (int, error)

	// GetRepository resolves owner/name to its canonical metadata.
	// Remote failures are reported as *RemoteError when a status is available.
	GetRepository(ctx context.Context, owner, name string) (*schema.Repository, error)

	// ListClosedIssues returns up to limit of the most recently created
	// closed issues. Pull requests surfaced through the issues endpoint are
	// included; callers filter on Issue.IsPullRequest.
	ListClosedIssues(ctx context.Context, owner, name string, limit int) ([]schema.Issue, error)

	// ListOpenIssues returns every open issue, most recently created first,
	// following pagination to the end of the backlog.
	ListOpenIssues(ctx context.Context, owner, name string) ([]schema.Issue, error)

	// ListClosedPulls returns up to limit of the most recently created
	// closed pull requests.
	ListClosedPulls(ctx context.Context, owner, name string, limit int) ([]schema.PullRequest, error)

	// FirstCommentTime returns the creation time of the oldest comment on
	// the given issue, or the zero time when the issue has no comments.
	FirstCommentTime(ctx context.Context, owner, name string, number int) (time.Time, error)

	// ContributorCount returns the total number of contributors.
	ContributorCount(ctx context.Context, owner, name string) (int, error)

	// ContributorStats returns per-contributor weekly addition records.
	// Returns ErrStatsProcessing while the platform is still computing them.
	ContributorStats(ctx context.Context, owner, name string) ([]schema.ContributorStat, error)

	// CommunityHealth returns the 0-100 community profile health percentage.
	CommunityHealth(ctx context.Context, owner, name string) (int, error)
}
