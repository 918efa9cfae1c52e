package contract

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/braxton-quillin/oss-dashboard/schema"
	github "github.com/google/go-github/v61/github"
	"golang.org/x/oauth2"
)

const userAgent = "ossdash/1.0"

// GitHubClient implements the RepoClient interface against the GitHub REST
// API. The zero budget, pagination and 202-deferral quirks of the API stay
// behind this adapter so the pipeline sees only the contract.
type GitHubClient struct {
	gh *github.Client
}

var _ RepoClient = (*GitHubClient)(nil) // Compile-time check

// NewGitHubClient creates an authenticated GitHub client if token is
// provided; otherwise unauthenticated (with the much smaller anonymous quota).
func NewGitHubClient(ctx context.Context, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}
	client := github.NewClient(httpClient)
	client.UserAgent = userAgent
	return &GitHubClient{gh: client}
}

// RemainingRequests implements the RepoClient interface.
func (c *GitHubClient) RemainingRequests(ctx context.Context) (int, error) {
	limits, _, err := c.gh.RateLimit.Get(ctx)
	if err != nil {
		return 0, wrapRemote(err)
	}
	return limits.GetCore().Remaining, nil
}

// GetRepository implements the RepoClient interface.
func (c *GitHubClient) GetRepository(ctx context.Context, owner, name string) (*schema.Repository, error) {
	repo, _, err := c.gh.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, wrapRemote(err)
	}
	out := &schema.Repository{
		FullName:    repo.GetFullName(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		OpenIssues:  repo.GetOpenIssuesCount(),
		Language:    repo.GetLanguage(),
		LicenseName: repo.GetLicense().GetName(),
	}
	if ts := repo.PushedAt; ts != nil {
		t := ts.Time
		out.PushedAt = &t
	}
	return out, nil
}

// ListClosedIssues implements the RepoClient interface. The limit fits in a
// single page, so no pagination loop is needed here.
func (c *GitHubClient) ListClosedIssues(ctx context.Context, owner, name string, limit int) ([]schema.Issue, error) {
	opt := &github.IssueListByRepoOptions{
		State:       "closed",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: limit},
	}
	issues, _, err := c.gh.Issues.ListByRepo(ctx, owner, name, opt)
	if err != nil {
		return nil, wrapRemote(err)
	}
	if len(issues) > limit {
		issues = issues[:limit]
	}
	out := make([]schema.Issue, 0, len(issues))
	for _, is := range issues {
		out = append(out, toIssue(is))
	}
	return out, nil
}

// ListOpenIssues implements the RepoClient interface, walking every page of
// the open backlog.
func (c *GitHubClient) ListOpenIssues(ctx context.Context, owner, name string) ([]schema.Issue, error) {
	opt := &github.IssueListByRepoOptions{
		State:       "open",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	var out []schema.Issue
	for {
		issues, resp, err := c.gh.Issues.ListByRepo(ctx, owner, name, opt)
		if err != nil {
			return nil, wrapRemote(err)
		}
		for _, is := range issues {
			out = append(out, toIssue(is))
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return out, nil
}

// ListClosedPulls implements the RepoClient interface.
func (c *GitHubClient) ListClosedPulls(ctx context.Context, owner, name string, limit int) ([]schema.PullRequest, error) {
	opt := &github.PullRequestListOptions{
		State:       "closed",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: limit},
	}
	pulls, _, err := c.gh.PullRequests.List(ctx, owner, name, opt)
	if err != nil {
		return nil, wrapRemote(err)
	}
	if len(pulls) > limit {
		pulls = pulls[:limit]
	}
	out := make([]schema.PullRequest, 0, len(pulls))
	for _, pr := range pulls {
		p := schema.PullRequest{
			Number:    pr.GetNumber(),
			CreatedAt: pr.GetCreatedAt().Time,
		}
		if ts := pr.MergedAt; ts != nil {
			t := ts.Time
			p.MergedAt = &t
		}
		if ts := pr.ClosedAt; ts != nil {
			t := ts.Time
			p.ClosedAt = &t
		}
		out = append(out, p)
	}
	return out, nil
}

// FirstCommentTime implements the RepoClient interface. Comments are listed
// oldest first, so a single one-item page yields the first response.
func (c *GitHubClient) FirstCommentTime(ctx context.Context, owner, name string, number int) (time.Time, error) {
	opt := &github.IssueListCommentsOptions{
		Sort:        github.String("created"),
		Direction:   github.String("asc"),
		ListOptions: github.ListOptions{PerPage: 1},
	}
	comments, _, err := c.gh.Issues.ListComments(ctx, owner, name, number, opt)
	if err != nil {
		return time.Time{}, wrapRemote(err)
	}
	if len(comments) == 0 {
		return time.Time{}, nil
	}
	return comments[0].GetCreatedAt().Time, nil
}

// ContributorCount implements the RepoClient interface. With one item per
// page the last page number equals the total count, which avoids walking the
// whole contributor list.
func (c *GitHubClient) ContributorCount(ctx context.Context, owner, name string) (int, error) {
	opt := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}
	contribs, resp, err := c.gh.Repositories.ListContributors(ctx, owner, name, opt)
	if err != nil {
		var accepted *github.AcceptedError
		if errors.As(err, &accepted) {
			return 0, ErrStatsProcessing
		}
		return 0, wrapRemote(err)
	}
	if resp.LastPage > 0 {
		return resp.LastPage, nil
	}
	return len(contribs), nil
}

// ContributorStats implements the RepoClient interface.
func (c *GitHubClient) ContributorStats(ctx context.Context, owner, name string) ([]schema.ContributorStat, error) {
	stats, _, err := c.gh.Repositories.ListContributorsStats(ctx, owner, name)
	if err != nil {
		var accepted *github.AcceptedError
		if errors.As(err, &accepted) {
			return nil, ErrStatsProcessing
		}
		return nil, wrapRemote(err)
	}
	out := make([]schema.ContributorStat, 0, len(stats))
	for _, st := range stats {
		entry := schema.ContributorStat{
			Author:          st.GetAuthor().GetLogin(),
			WeeklyAdditions: make([]int, 0, len(st.Weeks)),
		}
		for _, week := range st.Weeks {
			entry.WeeklyAdditions = append(entry.WeeklyAdditions, week.GetAdditions())
		}
		out = append(out, entry)
	}
	return out, nil
}

// CommunityHealth implements the RepoClient interface.
func (c *GitHubClient) CommunityHealth(ctx context.Context, owner, name string) (int, error) {
	metrics, _, err := c.gh.Repositories.GetCommunityHealthMetrics(ctx, owner, name)
	if err != nil {
		return 0, wrapRemote(err)
	}
	return metrics.GetHealthPercentage(), nil
}

// toIssue converts a platform issue into the contract value type.
func toIssue(is *github.Issue) schema.Issue {
	return schema.Issue{
		Number:        is.GetNumber(),
		CreatedAt:     is.GetCreatedAt().Time,
		CommentCount:  is.GetComments(),
		IsPullRequest: is.IsPullRequest(),
	}
}

// wrapRemote converts go-github error responses into RemoteError so that
// callers can report the platform status without importing go-github.
func wrapRemote(err error) error {
	var ger *github.ErrorResponse
	if errors.As(err, &ger) && ger.Response != nil {
		return &RemoteError{StatusCode: ger.Response.StatusCode, Message: ger.Message}
	}
	return err
}
