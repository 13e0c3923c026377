package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/conference-scheduling/pkg/core/services"
)

// ConstraintsCmd creates the constraints command
func ConstraintsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "constraints",
		Short: "List the scoring constraints and their configured weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n%-52s%-8s%-9s%s\n", "Constraint", "Level", "Impact", "Weight")
			for _, info := range services.ListConstraints(app.Calculator) {
				weight := fmt.Sprintf("%d", info.Weight)
				if !info.Enabled {
					weight = colorDim + "disabled" + colorReset
				}
				fmt.Fprintf(out, "%-52s%-8s%-9s%s\n", info.Name, info.Level, info.Impact, weight)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
