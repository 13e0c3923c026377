package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/conference-scheduling/pkg/core/services"
)

// ValidateCmd creates the validate command
func ValidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schedule_file>",
		Short: "Check a schedule document for incompatible placements and other problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("validate command", zap.String("file", args[0]))

			report, err := services.ValidateSchedule(args[0], app.Logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			problem := report.Schedule.Problem
			fmt.Fprintf(out, "\n%s (%s)\n", problem.Name, report.Schedule.ID)
			fmt.Fprintf(out, "  %d talk types, %d timeslots, %d rooms, %d speakers, %d talks\n\n",
				len(problem.TalkTypes), len(problem.Timeslots), len(problem.Rooms), len(problem.Speakers), len(problem.Talks))

			printFindings(out, colorRed, "Incompatible placements", report.Incompatible)
			printFindings(out, colorYellow, "Unassigned talks", report.Unassigned)
			printFindings(out, colorYellow, "Unknown prerequisites", report.DanglingPrerequisites)
			printFindings(out, colorYellow, "Moved pinned talks", report.MovedPinned)

			if !report.IsValid() {
				return fmt.Errorf("schedule %s has %d incompatible placements", args[0], len(report.Incompatible))
			}
			fmt.Fprintf(out, "%s✓ Schedule is valid%s\n\n", colorGreen, colorReset)
			return nil
		},
	}
}

func printFindings(out io.Writer, color, title string, findings []string) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(out, "%s%s (%d):%s\n", color, title, len(findings), colorReset)
	for _, finding := range findings {
		fmt.Fprintf(out, "  - %s\n", finding)
	}
	fmt.Fprintln(out)
}
