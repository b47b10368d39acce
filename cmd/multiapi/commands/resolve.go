package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/multiapi/internal/app"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [versions...]",
		Short: "Extract the API classpaths of the given or configured versions",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rerun, _ := cmd.Flags().GetBool("rerun")
			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				ConfigPath: configPath(cmd),
				Versions:   args,
				Rerun:      rerun,
			})
		},
	}
	cmd.Flags().Bool("rerun", false, "Re-extract classpaths, ignoring the cache")
	return cmd
}
