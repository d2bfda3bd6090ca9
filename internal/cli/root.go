package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quadrat-art/quadrat/internal/config"
	"github.com/quadrat-art/quadrat/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "quadrat"

// Execute runs the quadrat CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function loads the configuration file, sets up the root command with
// all subcommands (watch, render, serve, tree, cache), configures logging
// based on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	cfg, cfgErr := config.LoadDefault()

	root := &cobra.Command{
		Use:          appName,
		Short:        "Quadrat draws generative quad-division compositions",
		Long:         `Quadrat recursively partitions a canvas into nested rectangles, animates the subdivision in your terminal, and exports the result as vector images.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			if cfgErr != nil {
				logger.Warnf("Config file ignored: %v", cfgErr)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newWatchCmd(cfg))
	root.AddCommand(newRenderCmd(cfg))
	root.AddCommand(newServeCmd(cfg))
	root.AddCommand(newTreeCmd(cfg))
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
