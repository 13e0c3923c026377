package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", formatTable, "Output format: table, json or yaml")
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case formatTable, formatJSON, formatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q, expected table, json or yaml", format)
	}
}

// writeStructured writes value as JSON or YAML
func writeStructured(out io.Writer, format string, value interface{}) error {
	if format == formatJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return nil
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return encoder.Close()
}

// scoreColor is red for infeasible scores, yellow when medium constraints are broken
func scoreColor(score scoring.Score, red, yellow, green string) string {
	switch {
	case !score.IsFeasible():
		return red
	case score.Medium < 0:
		return yellow
	default:
		return green
	}
}

func levelColor(level scoring.Level) string {
	switch level {
	case scoring.Hard:
		return colorRed
	case scoring.Medium:
		return colorYellow
	default:
		return colorDim
	}
}

func colorScore(score scoring.Score) string {
	return scoreColor(score, colorRed, colorYellow, colorGreen) + score.String() + colorReset
}
