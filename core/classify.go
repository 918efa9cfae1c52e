package core

import "github.com/braxton-quillin/oss-dashboard/schema"

// Classification thresholds. All boundaries are half-open with the lower
// bound inclusive on the worse side for time-based metrics, e.g. exactly 24
// hours of response time is moderate, not favorable.
const (
	busFactorModerateMin  = 3  // below this, unfavorable
	busFactorFavorableMin = 10 // at or above this, favorable

	responseFavorableMaxHours = 24
	responseModerateMaxHours  = 72

	latencyFavorableMaxDays = 3
	latencyModerateMaxDays  = 7

	healthFavorableMin = 80
	healthModerateMin  = 50

	issueAgeFavorableMaxDays = 30
	issueAgeModerateMaxDays  = 90
)

// classifyBusFactor bands the contributor concentration metric.
// Direction is inverted relative to the time-based metrics: higher is better.
func classifyBusFactor(m schema.Metric) schema.SeverityBand {
	if !m.Ok() {
		return schema.UnknownBand
	}
	switch {
	case m.Value < busFactorModerateMin:
		return schema.UnfavorableBand
	case m.Value < busFactorFavorableMin:
		return schema.ModerateBand
	default:
		return schema.FavorableBand
	}
}

// classifyResponseTime bands the mean first-response time in hours.
func classifyResponseTime(m schema.Metric) schema.SeverityBand {
	if !m.Ok() {
		return schema.UnknownBand
	}
	switch {
	case m.Value < responseFavorableMaxHours:
		return schema.FavorableBand
	case m.Value < responseModerateMaxHours:
		return schema.ModerateBand
	default:
		return schema.UnfavorableBand
	}
}

// classifyReviewLatency bands the mean pull request latency in days.
func classifyReviewLatency(m schema.Metric) schema.SeverityBand {
	if !m.Ok() {
		return schema.UnknownBand
	}
	switch {
	case m.Value < latencyFavorableMaxDays:
		return schema.FavorableBand
	case m.Value < latencyModerateMaxDays:
		return schema.ModerateBand
	default:
		return schema.UnfavorableBand
	}
}

// classifyHealthScore bands the 0-100 community health percentage.
// This dimension never reports unknown: the score defaults to 0 on failure,
// which lands in the unfavorable band.
func classifyHealthScore(score int) schema.SeverityBand {
	switch {
	case score >= healthFavorableMin:
		return schema.FavorableBand
	case score >= healthModerateMin:
		return schema.ModerateBand
	default:
		return schema.UnfavorableBand
	}
}

// classifyIssueAge bands the mean open-issue age in days.
func classifyIssueAge(m schema.Metric) schema.SeverityBand {
	if !m.Ok() {
		return schema.UnknownBand
	}
	switch {
	case m.Value < issueAgeFavorableMaxDays:
		return schema.FavorableBand
	case m.Value < issueAgeModerateMaxDays:
		return schema.ModerateBand
	default:
		return schema.UnfavorableBand
	}
}
