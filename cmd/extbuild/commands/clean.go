package commands

import (
	"github.com/spf13/cobra"
	"go.kinematix.dev/extbuild/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [targets...]",
		Short: "Remove staging directories and build records",
		Long: "Remove the staging directories of the named extensions, or of every\n" +
			"extension when none are named. Built artifacts in the output directory\n" +
			"are left in place.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			staging, _ := cmd.Flags().GetString("staging")
			return c.app.Clean(cmd.Context(), args, app.Options{
				ConfigPath:  c.configPath(cmd),
				StagingRoot: staging,
			})
		},
	}
	cmd.Flags().StringP("staging", "s", ".extbuild/staging", "Root of the per-extension staging directories")
	return cmd
}
