package contract

import (
	"fmt"
	"os"

	"github.com/braxton-quillin/oss-dashboard/schema"
	"github.com/fatih/color"
)

// Severity label constants.
const (
	GoodValue    = "Good"    // favorable value
	FairValue    = "Fair"    // moderate value
	PoorValue    = "Poor"    // unfavorable value
	UnknownValue = "Unknown" // metric could not be classified
)

// Color variables for console output.
var (
	GoodColor    = color.New(color.FgGreen)           // goodColor represents a healthy signal.
	FairColor    = color.New(color.FgYellow)          // fairColor represents standard caution.
	PoorColor    = color.New(color.FgRed, color.Bold) // poorColor represents standard danger.
	UnknownColor = color.New(color.FgWhite)           // unknownColor represents absent data.
)

// GetPlainLabel returns a plain text label for a severity band. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainLabel(band schema.SeverityBand) string {
	switch band {
	case schema.FavorableBand:
		return GoodValue
	case schema.ModerateBand:
		return FairValue
	case schema.UnfavorableBand:
		return PoorValue
	default:
		return UnknownValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(band schema.SeverityBand) string {
	text := GetPlainLabel(band)

	switch text {
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	case PoorValue:
		return PoorColor.Sprint(text)
	default: // "Unknown"
		return UnknownColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
