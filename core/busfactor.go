package core

import (
	"context"
	"errors"
	"sort"

	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/braxton-quillin/oss-dashboard/schema"
)

// busFactorTarget is the share of total additions the top contributors must
// cover: the bus factor is the minimum head count reaching it.
const busFactorTarget = 0.5

// collectContributors gathers the contributor count and the bus factor in
// one pass. The two fields share failure behavior: a deferred-computation
// signal from the platform marks both as processing, any other failure marks
// both as unavailable.
func collectContributors(ctx context.Context, client contract.RepoClient, owner, name string) (total, busFactor schema.Metric) {
	count, err := client.ContributorCount(ctx, owner, name)
	if err != nil {
		return contributorFailure(err)
	}

	stats, err := client.ContributorStats(ctx, owner, name)
	if err != nil {
		return contributorFailure(err)
	}

	total = schema.MetricOf(float64(count))
	if bf, ok := busFactorFromStats(stats); ok {
		busFactor = schema.MetricOf(float64(bf))
	} else {
		busFactor = schema.UnavailableMetric()
	}
	return total, busFactor
}

// contributorFailure maps a remote failure onto the shared sentinel pair.
func contributorFailure(err error) (total, busFactor schema.Metric) {
	if errors.Is(err, contract.ErrStatsProcessing) {
		return schema.ProcessingMetric(), schema.ProcessingMetric()
	}
	return schema.UnavailableMetric(), schema.UnavailableMetric()
}

// busFactorFromStats folds the weekly addition records into one total per
// contributor, then walks the totals in descending order until the running
// sum covers half of all recorded additions. The grand total includes
// contributors without a resolvable author identity, but only identified
// contributors participate in the walk.
//
// A repository with no recorded additions yields a bus factor of 1: one
// person did everything, which is different from not knowing. The walk can
// fail to reach the target when anonymous contributors hold most of the
// additions; that case reports ok=false.
func busFactorFromStats(stats []schema.ContributorStat) (busFactor int, ok bool) {
	totalAdditions := 0
	identified := make([]int, 0, len(stats))
	for _, st := range stats {
		sum := 0
		for _, additions := range st.WeeklyAdditions {
			sum += additions
		}
		totalAdditions += sum
		if st.Author != "" {
			identified = append(identified, sum)
		}
	}

	if totalAdditions == 0 {
		return 1, true
	}

	// Ties among equal totals do not affect the count, so ordering within
	// them is insignificant.
	sort.Sort(sort.Reverse(sort.IntSlice(identified)))

	target := float64(totalAdditions) * busFactorTarget
	running := 0
	for i, additions := range identified {
		running += additions
		if float64(running) >= target {
			return i + 1, true
		}
	}
	return 0, false
}
