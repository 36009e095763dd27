package commands

import (
	"github.com/spf13/cobra"
	"go.kinematix.dev/extbuild/internal/adapters/env"
	"go.kinematix.dev/extbuild/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Configure and build extensions",
		Long: "Configure and build the named extensions, or every extension in the\n" +
			"manifest when none are named. Each extension configures and builds in\n" +
			"its own staging directory, which is kept between runs for incremental\n" +
			"rebuilds.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			output, _ := cmd.Flags().GetString("output")
			staging, _ := cmd.Flags().GetString("staging")

			invocation := env.Detect()
			return c.app.Build(cmd.Context(), args, app.Options{
				ConfigPath:            c.configPath(cmd),
				Debug:                 debug,
				OutputDir:             output,
				StagingRoot:           staging,
				OverrideEnabled:       invocation.OverrideEnabled,
				ParallelismConfigured: invocation.ParallelismConfigured,
				Tool:                  invocation.Tool,
			})
		},
	}
	cmd.Flags().BoolP("debug", "d", false, "Build with debugging symbols instead of Release")
	cmd.Flags().StringP("output", "o", "lib", "Directory that receives the built artifacts")
	cmd.Flags().StringP("staging", "s", ".extbuild/staging", "Root of the per-extension staging directories")
	return cmd
}
