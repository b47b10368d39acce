package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/multiapi/internal/app"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the variant configuration for every target version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolve, _ := cmd.Flags().GetBool("resolve")
			rerun, _ := cmd.Flags().GetBool("rerun")
			return c.app.Plan(cmd.Context(), app.PlanOptions{
				ConfigPath: configPath(cmd),
				Resolve:    resolve,
				Rerun:      rerun,
			})
		},
	}
	cmd.Flags().BoolP("resolve", "r", false, "Extract every classpath before printing")
	cmd.Flags().Bool("rerun", false, "Re-extract classpaths, ignoring the cache")
	return cmd
}
