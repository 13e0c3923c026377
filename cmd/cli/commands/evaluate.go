package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
	"github.com/jakechorley/conference-scheduling/pkg/core/services"
)

type evaluationView struct {
	Path          string         `json:"path" yaml:"path"`
	ScheduleID    string         `json:"scheduleId,omitempty" yaml:"scheduleId,omitempty"`
	Name          string         `json:"name,omitempty" yaml:"name,omitempty"`
	Score         *scoring.Score `json:"score,omitempty" yaml:"score,omitempty"`
	Feasible      bool           `json:"feasible" yaml:"feasible"`
	AssignedTalks int            `json:"assignedTalks" yaml:"assignedTalks"`
	TotalTalks    int            `json:"totalTalks" yaml:"totalTalks"`
	Error         string         `json:"error,omitempty" yaml:"error,omitempty"`
}

func evaluationViews(results []services.EvaluationResult) []evaluationView {
	views := make([]evaluationView, 0, len(results))
	for _, result := range results {
		view := evaluationView{
			Path:          result.Path,
			ScheduleID:    result.ScheduleID,
			Name:          result.Name,
			AssignedTalks: result.AssignedTalks,
			TotalTalks:    result.TotalTalks,
		}
		if result.Err != nil {
			view.Error = result.Err.Error()
		} else {
			score := result.Score()
			view.Score = &score
			view.Feasible = score.IsFeasible()
		}
		views = append(views, view)
	}
	return views
}

// EvaluateCmd creates the evaluate command
func EvaluateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <schedule_file>...",
		Short: "Score one or more schedule documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			metricsFile, _ := cmd.Flags().GetString("metrics-file")
			if metricsFile == "" {
				metricsFile = app.Cfg.MetricsFile
			}

			app.Logger.Debug("evaluate command", zap.Strings("files", args), zap.String("metrics_file", metricsFile))

			results, err := services.EvaluateSchedules(app.Ctx, app.Cfg, app.Logger, app.Calculator, app.Metrics, args)
			if err != nil {
				return err
			}

			if err := app.Metrics.WriteTextfile(metricsFile); err != nil {
				app.Logger.Warn("Failed to write metrics", zap.Error(err))
			}

			out := cmd.OutOrStdout()
			if format != formatTable {
				if err := writeStructured(out, format, evaluationViews(results)); err != nil {
					return err
				}
			} else {
				printEvaluations(out, results)
			}

			for _, result := range results {
				if result.Err != nil {
					return fmt.Errorf("failed to evaluate %s", result.Path)
				}
			}
			return nil
		},
	}

	addFormatFlag(cmd)
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file (overrides config)")

	return cmd
}

func printEvaluations(out io.Writer, results []services.EvaluationResult) {
	fileColWidth := 20
	for _, result := range results {
		if name := filepath.Base(result.Path); len(name) > fileColWidth {
			fileColWidth = len(name)
		}
	}
	fileColWidth += 2

	fmt.Fprintf(out, "\n%-*s%-34s%-12s%s\n", fileColWidth, "Schedule", "Score", "Assigned", "Name")
	for _, result := range results {
		name := filepath.Base(result.Path)
		if result.Err != nil {
			fmt.Fprintf(out, "%-*s%s✗ %v%s\n", fileColWidth, name, colorRed, result.Err, colorReset)
			continue
		}

		score := result.Score()
		// Pad before colouring so escape codes do not break alignment
		fmt.Fprintf(out, "%-*s%s%-34s%s%-12s%s\n",
			fileColWidth, name,
			scoreColor(score, colorRed, colorYellow, colorGreen), score.String(), colorReset,
			fmt.Sprintf("%d/%d", result.AssignedTalks, result.TotalTalks),
			result.Name)
	}
	fmt.Fprintln(out)
}
