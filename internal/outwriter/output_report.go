package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/braxton-quillin/oss-dashboard/internal/contract"
	"github.com/braxton-quillin/oss-dashboard/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteReport outputs a health report, dispatching based on the output
// format configured.
func WriteReport(report *schema.HealthReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, report, cfg)
		}, "Wrote table")
	}
}

// bandLabel returns the assessment label for a band, colored when enabled.
func bandLabel(band schema.SeverityBand, useColors bool) string {
	if useColors {
		return contract.GetColorLabel(band)
	}
	return contract.GetPlainLabel(band)
}

// writeReportTable generates and writes the human-readable table.
func writeReportTable(w io.Writer, report *schema.HealthReport, cfg *contract.Config) error {
	if report.Failed() {
		if _, err := fmt.Fprintf(w, "Error: %s\n", report.Error); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "Rate limit remaining: %d\n", report.RateLimitRemaining)
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value", "Assessment"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	data := [][]string{
		{"Repository", report.RepoName, ""},
		{"Stars", strconv.Itoa(report.Stars), ""},
		{"Forks", strconv.Itoa(report.Forks), ""},
		{"Open Issues", strconv.Itoa(report.OpenIssues), ""},
		{"Language", report.Language, ""},
		{"License", report.License, ""},
		{"Last Push", report.LastCommitDate, ""},
		{"Avg Response Time (hours)", report.ResponseTimeHours.Display(2), bandLabel(report.ResponseTimeBand, cfg.UseColors)},
		{"Avg Open Issue Age (days)", report.IssueAgeDays.Display(1), bandLabel(report.IssueAgeBand, cfg.UseColors)},
		{"Avg PR Latency (days)", report.PRLatencyDays.Display(2), bandLabel(report.LatencyBand, cfg.UseColors)},
		{"Contributors", report.TotalContributors.Display(0), ""},
		{"Bus Factor", report.BusFactor.Display(0), bandLabel(report.BusFactorBand, cfg.UseColors)},
		{"Community Health (%)", strconv.Itoa(report.HealthPercentage), bandLabel(report.HealthBand, cfg.UseColors)},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Rate limit remaining: %d\n", report.RateLimitRemaining)
	return err
}

// writeReportCSV writes the report as a single CSV record.
func writeReportCSV(w io.Writer, report *schema.HealthReport) error {
	header := []string{
		"repo_name",
		"stars",
		"forks",
		"open_issues",
		"language",
		"license",
		"last_commit_date",
		"avg_response_time_hours",
		"avg_issue_age_days",
		"avg_pr_latency_days",
		"total_contributors",
		"bus_factor",
		"health_percentage",
		"rate_limit_remaining",
		"response_time_band",
		"issue_age_band",
		"latency_band",
		"bus_factor_band",
		"health_band",
		"error",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		row := []string{
			report.RepoName,
			strconv.Itoa(report.Stars),
			strconv.Itoa(report.Forks),
			strconv.Itoa(report.OpenIssues),
			report.Language,
			report.License,
			report.LastCommitDate,
			report.ResponseTimeHours.Display(2),
			report.IssueAgeDays.Display(1),
			report.PRLatencyDays.Display(2),
			report.TotalContributors.Display(0),
			report.BusFactor.Display(0),
			strconv.Itoa(report.HealthPercentage),
			strconv.Itoa(report.RateLimitRemaining),
			string(report.ResponseTimeBand),
			string(report.IssueAgeBand),
			string(report.LatencyBand),
			string(report.BusFactorBand),
			string(report.HealthBand),
			report.Error,
		}
		return cw.Write(row)
	})
}
