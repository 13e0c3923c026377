package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
	"github.com/jakechorley/conference-scheduling/pkg/core/services"
)

// ExplainCmd creates the explain command
func ExplainCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <schedule_file>",
		Short: "List every constraint match of a schedule with its impact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			levelFilter, _ := cmd.Flags().GetString("level")
			talkFilter, _ := cmd.Flags().GetString("talk")

			app.Logger.Debug("explain command",
				zap.String("file", args[0]),
				zap.String("level", levelFilter),
				zap.String("talk", talkFilter))

			result, err := services.ExplainSchedule(args[0], app.Calculator, app.Logger)
			if err != nil {
				return err
			}

			justifications := filterJustifications(result.Justifications, levelFilter, talkFilter)

			out := cmd.OutOrStdout()
			if format != formatTable {
				return writeStructured(out, format, justifications)
			}

			fmt.Fprintf(out, "\n%s (%s): %s\n\n", result.Schedule.Problem.Name, result.Schedule.ID, colorScore(result.Score))
			printJustifications(out, justifications)
			return nil
		},
	}

	addFormatFlag(cmd)
	cmd.Flags().String("level", "", "Only show matches at this level (hard, medium or soft)")
	cmd.Flags().String("talk", "", "Only show matches involving this talk code")

	return cmd
}

func filterJustifications(justifications []scoring.Justification, level, talk string) []scoring.Justification {
	return lo.Filter(justifications, func(j scoring.Justification, _ int) bool {
		if level != "" && !strings.EqualFold(j.Level.String(), level) {
			return false
		}
		if talk != "" && !lo.Contains(j.TalkCodes, talk) {
			return false
		}
		return true
	})
}

func printJustifications(out io.Writer, justifications []scoring.Justification) {
	if len(justifications) == 0 {
		fmt.Fprintln(out, "No constraint matches.")
		fmt.Fprintln(out)
		return
	}

	current := ""
	for _, j := range justifications {
		if j.Constraint != current {
			current = j.Constraint
			fmt.Fprintf(out, "%s%s%s (%s)\n", levelColor(j.Level), j.Constraint, colorReset, j.Level)
		}
		fmt.Fprintf(out, "  %+8d  %s\n", j.Impact, j.Description)
	}
	fmt.Fprintf(out, "\n%d matches\n\n", len(justifications))
}
