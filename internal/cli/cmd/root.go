// Package cmd provides Cobra CLI commands for chartdeck.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/chartdeck/internal/cli"
	"github.com/bnema/chartdeck/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "chartdeck",
		Short: "Page through decks of terminal charts",
		Long: `chartdeck - a carousel of chart slides for the terminal.

A deck is a YAML file listing slides, each holding one or more charts fed by
CSV files, HTTP endpoints, SQLite tables or generated series. Only the
slides next to the one on screen keep their charts drawn, so large decks
stay cheap to page through.

Use 'chartdeck view deck.yaml' to open the interactive viewer, or
'chartdeck render' to print a slide without a terminal UI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.AppOptions{
				ConfigDir: configDir,
				// The viewer owns the terminal; everything else may log to stderr.
				LogToStderr: cmd.Name() != "view",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default $XDG_CONFIG_HOME/chartdeck)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
