// Package schema has models, enums and constants for all parts of ossdash.
package schema

import "time"

// HealthReport is the flat record produced for a single repository snapshot.
// It is either a successful snapshot or an error: when Error is non-empty,
// every other field except RateLimitRemaining is meaningless.
type HealthReport struct {
	RepoName           string       `json:"repo_name"`
	Stars              int          `json:"stars"`
	Forks              int          `json:"forks"`
	OpenIssues         int          `json:"open_issues"`
	Language           string       `json:"language"`
	License            string       `json:"license"`
	LastCommitDate     string       `json:"last_commit_date"`
	ResponseTimeHours  Metric       `json:"avg_response_time_hours"`
	IssueAgeDays       Metric       `json:"avg_issue_age_days"`
	PRLatencyDays      Metric       `json:"avg_pr_latency_days"`
	TotalContributors  Metric       `json:"total_contributors"`
	BusFactor          Metric       `json:"bus_factor"`
	HealthPercentage   int          `json:"health_percentage"`
	RateLimitRemaining int          `json:"rate_limit_remaining"`
	BusFactorBand      SeverityBand `json:"bus_factor_band"`
	ResponseTimeBand   SeverityBand `json:"response_time_band"`
	LatencyBand        SeverityBand `json:"latency_band"`
	HealthBand         SeverityBand `json:"health_band"`
	IssueAgeBand       SeverityBand `json:"issue_age_band"`
	Error              string       `json:"error,omitempty"`
}

// Failed reports whether the snapshot halted with a fatal error.
func (r *HealthReport) Failed() bool {
	return r.Error != ""
}

// Repository holds the directly-read attributes of a resolved repository.
type Repository struct {
	FullName    string
	Stars       int
	Forks       int
	OpenIssues  int
	Language    string     // empty when the platform reports none
	LicenseName string     // empty when the repository has no license
	PushedAt    *time.Time // nil when the repository was never pushed to
}

// Issue is one issue-tracker entry. The platform surfaces pull requests
// through the same endpoint, so IsPullRequest must be checked before
// treating an entry as a true issue.
type Issue struct {
	Number        int
	CreatedAt     time.Time
	CommentCount  int
	IsPullRequest bool
}

// PullRequest is one closed pull request. MergedAt and ClosedAt may both be
// nil for records the platform closed without recording an end timestamp.
type PullRequest struct {
	Number    int
	CreatedAt time.Time
	MergedAt  *time.Time
	ClosedAt  *time.Time
}

// ContributorStat holds one contributor's weekly line-addition history.
// Author is empty when the platform could not resolve the author identity.
type ContributorStat struct {
	Author          string
	WeeklyAdditions []int
}
