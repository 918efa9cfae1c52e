package schema

// Custom string types for type safety.
type (
	// SeverityBand represents the traffic-light classification of a metric.
	SeverityBand string

	// MetricState represents whether a metric value could be computed.
	MetricState string

	// OutputMode represents the format of the output.
	OutputMode string
)

// All severity bands supported.
const (
	FavorableBand   SeverityBand = "favorable"
	ModerateBand    SeverityBand = "moderate"
	UnfavorableBand SeverityBand = "unfavorable"
	UnknownBand     SeverityBand = "unknown" // default when the metric is unavailable or invalid
)

// All metric states supported.
const (
	MetricOK          MetricState = "ok"
	MetricUnavailable MetricState = "unavailable" // permanent absence for this snapshot
	MetricProcessing  MetricState = "processing"  // platform still computing, retry later
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// SampleLimit caps the number of items fetched for the bounded collectors
// (closed issues and closed pull requests). Open-issue age deliberately has
// no cap and walks the full backlog.
const SampleLimit = 20

// Display sentinels for metrics that could not be computed.
const (
	UnavailableDisplay = "N/A"
	ProcessingDisplay  = "Processing..."
)

// Display sentinels for repository attributes with no value.
const (
	UnknownLanguage    = "unknown"
	UnspecifiedLicense = "unspecified"
	UnavailableDate    = "unavailable"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}

// CSSClass returns the Bootstrap contextual class used by the web dashboard
// for this band (green/yellow/red/neutral).
func (b SeverityBand) CSSClass() string {
	switch b {
	case FavorableBand:
		return "success"
	case ModerateBand:
		return "warning"
	case UnfavorableBand:
		return "danger"
	default:
		return "secondary"
	}
}
