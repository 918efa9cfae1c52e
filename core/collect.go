package core

import (
	"context"
	"math"
	"time"

	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/braxton-quillin/oss-dashboard/schema"
)

// Unit conversions for elapsed-time samples, which accumulate in seconds.
const (
	secondsPerHour = 3600.0
	secondsPerDay  = 86400.0
)

// collectResponseTime computes the mean time from issue creation to first
// comment across the most recently created closed issues, in hours.
// Pull requests surfaced through the issues endpoint are excluded.
func collectResponseTime(ctx context.Context, client contract.RepoClient, owner, name string) schema.Metric {
	issues, err := client.ListClosedIssues(ctx, owner, name, schema.SampleLimit)
	if err != nil {
		return schema.UnavailableMetric()
	}

	samples := schema.NewSampleSet(schema.SampleLimit)
	for _, issue := range issues {
		if issue.IsPullRequest || issue.CommentCount == 0 {
			continue
		}
		first, err := client.FirstCommentTime(ctx, owner, name, issue.Number)
		if err != nil || first.IsZero() {
			continue
		}
		samples.Add(first.Sub(issue.CreatedAt).Seconds())
	}

	mean, ok := samples.Mean()
	if !ok {
		return schema.UnavailableMetric()
	}
	return schema.MetricOf(roundTo(mean/secondsPerHour, 2))
}

// collectOpenIssueAge computes the mean age of every open issue relative to
// now, in days. Unlike the other collectors this walks the entire backlog.
func collectOpenIssueAge(ctx context.Context, client contract.RepoClient, owner, name string, now time.Time) schema.Metric {
	issues, err := client.ListOpenIssues(ctx, owner, name)
	if err != nil {
		return schema.UnavailableMetric()
	}

	samples := schema.NewSampleSet(0)
	for _, issue := range issues {
		if issue.IsPullRequest {
			continue
		}
		samples.Add(now.Sub(issue.CreatedAt).Seconds())
	}

	mean, ok := samples.Mean()
	if !ok {
		return schema.UnavailableMetric()
	}
	return schema.MetricOf(roundTo(mean/secondsPerDay, 1))
}

// collectReviewLatency computes the mean time from pull request creation to
// merge (or close, when never merged), in days. Records closed without any
// end timestamp are skipped rather than aborting the sample.
func collectReviewLatency(ctx context.Context, client contract.RepoClient, owner, name string) schema.Metric {
	pulls, err := client.ListClosedPulls(ctx, owner, name, schema.SampleLimit)
	if err != nil {
		return schema.UnavailableMetric()
	}

	samples := schema.NewSampleSet(schema.SampleLimit)
	for _, pr := range pulls {
		end := pr.MergedAt
		if end == nil {
			end = pr.ClosedAt
		}
		if end == nil {
			continue
		}
		samples.Add(end.Sub(pr.CreatedAt).Seconds())
	}

	mean, ok := samples.Mean()
	if !ok {
		return schema.UnavailableMetric()
	}
	return schema.MetricOf(roundTo(mean/secondsPerDay, 2))
}

// collectCommunityHealth reads the 0-100 community profile score.
// Failures default to 0; this metric has no unavailable sentinel.
func collectCommunityHealth(ctx context.Context, client contract.RepoClient, owner, name string) int {
	score, err := client.CommunityHealth(ctx, owner, name)
	if err != nil || score < 0 {
		return 0
	}
	return score
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
