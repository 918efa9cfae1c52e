// Package core implements the health metric pipeline: quota guard,
// repository resolution, metric collection and severity classification.
package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/braxton-quillin/oss-dashboard/schema"
)

// BuildHealthReport computes a single health snapshot for the repository
// identified by repoID ("owner/name"). It never returns an error: fatal
// failures (exhausted quota, unresolvable repository) come back as a report
// with only the Error and RateLimitRemaining fields set, and every
// metric-level failure is downgraded to its sentinel so the rest of the
// report still computes.
func BuildHealthReport(ctx context.Context, client contract.RepoClient, repoID string) *schema.HealthReport {
	report := newEmptyReport()

	remaining, err := client.RemainingRequests(ctx)
	if err != nil {
		report.Error = fmt.Sprintf("could not read API rate limit status: %v", err)
		return report
	}
	report.RateLimitRemaining = remaining

	// Every stage below issues multiple calls; proceeding with a near-zero
	// budget would fail midway and waste what remains.
	if remaining < contract.MinRemainingBudget {
		report.Error = fmt.Sprintf(
			"API rate limit warning: only %d requests remaining. Please wait one hour or provide a new token.",
			remaining)
		return report
	}

	owner, name, ok := splitRepoID(repoID)
	if !ok {
		report.Error = fmt.Sprintf("invalid repository identifier %q (expected owner/name)", repoID)
		return report
	}

	repo, err := client.GetRepository(ctx, owner, name)
	if err != nil {
		if status := contract.RemoteStatus(err); status != 0 {
			report.Error = fmt.Sprintf("repository not found, private, or unknown platform error: %d", status)
		} else {
			report.Error = fmt.Sprintf("repository not found, private, or unknown platform error: %v", err)
		}
		return report
	}

	resolveAttributes(report, repo)

	now := time.Now().UTC()
	report.ResponseTimeHours = collectResponseTime(ctx, client, owner, name)
	report.IssueAgeDays = collectOpenIssueAge(ctx, client, owner, name, now)
	report.PRLatencyDays = collectReviewLatency(ctx, client, owner, name)
	report.TotalContributors, report.BusFactor = collectContributors(ctx, client, owner, name)
	report.HealthPercentage = collectCommunityHealth(ctx, client, owner, name)

	classifyReport(report)
	return report
}

// newEmptyReport returns a report with every sentinel pre-applied, so a
// collector that never runs still leaves a well-formed record behind.
func newEmptyReport() *schema.HealthReport {
	return &schema.HealthReport{
		Language:          schema.UnknownLanguage,
		License:           schema.UnspecifiedLicense,
		LastCommitDate:    schema.UnavailableDate,
		ResponseTimeHours: schema.UnavailableMetric(),
		IssueAgeDays:      schema.UnavailableMetric(),
		PRLatencyDays:     schema.UnavailableMetric(),
		TotalContributors: schema.UnavailableMetric(),
		BusFactor:         schema.UnavailableMetric(),
		BusFactorBand:     schema.UnknownBand,
		ResponseTimeBand:  schema.UnknownBand,
		LatencyBand:       schema.UnknownBand,
		HealthBand:        schema.UnknownBand,
		IssueAgeBand:      schema.UnknownBand,
	}
}

// resolveAttributes copies the directly-read repository attributes into the report.
func resolveAttributes(report *schema.HealthReport, repo *schema.Repository) {
	report.RepoName = repo.FullName
	report.Stars = repo.Stars
	report.Forks = repo.Forks
	report.OpenIssues = repo.OpenIssues
	if repo.Language != "" {
		report.Language = repo.Language
	}
	if repo.LicenseName != "" {
		report.License = repo.LicenseName
	}
	if repo.PushedAt != nil {
		report.LastCommitDate = repo.PushedAt.Format(contract.PushDateFormat)
	}
}

// classifyReport maps every metric onto its severity band.
func classifyReport(report *schema.HealthReport) {
	report.BusFactorBand = classifyBusFactor(report.BusFactor)
	report.ResponseTimeBand = classifyResponseTime(report.ResponseTimeHours)
	report.LatencyBand = classifyReviewLatency(report.PRLatencyDays)
	report.HealthBand = classifyHealthScore(report.HealthPercentage)
	report.IssueAgeBand = classifyIssueAge(report.IssueAgeDays)
}

// splitRepoID parses an "owner/name" identifier.
func splitRepoID(repoID string) (owner, name string, ok bool) {
	owner, name, found := strings.Cut(strings.TrimSpace(repoID), "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return owner, name, true
}
