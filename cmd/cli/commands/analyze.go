package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
	"github.com/jakechorley/conference-scheduling/pkg/core/services"
)

// AnalyzeCmd creates the analyze command
func AnalyzeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <schedule_file>",
		Short: "Break a schedule's score down per constraint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			showAll, _ := cmd.Flags().GetBool("all")

			app.Logger.Debug("analyze command", zap.String("file", args[0]), zap.Bool("all", showAll))

			schedule, analysis, err := services.AnalyzeSchedule(args[0], app.Calculator, app.Logger)
			if err != nil {
				return err
			}

			entries := analysis.Constraints
			if !showAll {
				entries = analysis.Broken()
			}

			out := cmd.OutOrStdout()
			if format != formatTable {
				return writeStructured(out, format, &scoring.Analysis{Score: analysis.Score, Constraints: entries})
			}

			fmt.Fprintf(out, "\n%s (%s): %s\n\n", schedule.Problem.Name, schedule.ID, colorScore(analysis.Score))
			printAnalysis(out, entries)
			return nil
		},
	}

	addFormatFlag(cmd)
	cmd.Flags().Bool("all", false, "Include constraints without matches")

	return cmd
}

func printAnalysis(out io.Writer, entries []scoring.ConstraintAnalysis) {
	nameColWidth := 20
	for _, entry := range entries {
		if len(entry.Name) > nameColWidth {
			nameColWidth = len(entry.Name)
		}
	}
	nameColWidth += 2

	fmt.Fprintf(out, "%-*s%-8s%8s%9s%10s%12s\n", nameColWidth, "Constraint", "Level", "Weight", "Matches", "Units", "Score")
	for _, entry := range entries {
		fmt.Fprintf(out, "%s%-*s%s%-8s%8d%9d%10d%12d\n",
			levelColor(entry.Level), nameColWidth, entry.Name, colorReset,
			entry.Level, entry.Weight, entry.MatchCount, entry.Units, entry.Score)
	}
	fmt.Fprintln(out)
}
