package contract

import (
	"fmt"
	"strings"

	"github.com/braxton-quillin/oss-dashboard/schema"
)

// Default values for configuration.
const (
	// MinRemainingBudget is the request budget below which the pipeline
	// halts without issuing further calls.
	MinRemainingBudget = 5

	// DefaultListenAddr is where the web dashboard listens.
	DefaultListenAddr = ":8000"
)

// PushDateFormat is the short human date used for the last-push attribute.
var PushDateFormat = "Jan 02, 2006"

// Config holds the runtime configuration for a report run.
// This struct remains the "final, validated" config.
type Config struct {
	Token      string
	Output     schema.OutputMode
	OutputFile string
	UseColors  bool
	ListenAddr string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Token      string `mapstructure:"token"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Color      string `mapstructure:"color"`
	Listen     string `mapstructure:"listen"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.Token = strings.TrimSpace(input.Token)

	output := schema.OutputMode(strings.ToLower(strings.TrimSpace(input.Output)))
	if output == "" {
		output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q (expected text, json or csv)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	useColors, err := parseBoolFlag(input.Color, true)
	if err != nil {
		return fmt.Errorf("invalid color value %q: %w", input.Color, err)
	}
	cfg.UseColors = useColors

	cfg.ListenAddr = input.Listen
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	return nil
}

// parseBoolFlag interprets the yes/no style string flags used on the CLI.
func parseBoolFlag(value string, fallback bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return fallback, nil
	case "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes/no/true/false/1/0")
	}
}
