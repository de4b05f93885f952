package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/chartdeck/internal/infrastructure/config"
	xdgadapter "github.com/bnema/chartdeck/internal/infrastructure/xdg"
)

var (
	configForce     bool
	configSchemaDir string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where configuration and logs live, write a default config file, or print its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config and log locations",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default setting",
	Long: `Write config.toml with every setting at its default value.

An existing file is left alone unless --force is given.`,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the config JSON schema",
	Long: `Print the JSON schema of config.toml, for editor completion and
validation. With --output the schema is written to that directory.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configSchemaDir, "output", "o", "", "write schema.json into this directory")
}

func configFilePath() (string, error) {
	if app := GetApp(); app != nil && app.Manager != nil {
		return app.Manager.GetConfigFile(), nil
	}
	if configDir != "" {
		return filepath.Join(configDir, "config.toml"), nil
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	theme := app.Theme
	out := cmd.OutOrStdout()

	file, err := configFilePath()
	if err != nil {
		return err
	}
	logDir := app.Config.Logging.LogDir
	if logDir == "" {
		if logDir, err = xdgadapter.New().LogDir(); err != nil {
			return err
		}
	}

	_, statErr := os.Stat(file)
	fmt.Fprintf(out, "%s %s %s\n", theme.Highlight.Render("config"), file, theme.CheckMark(statErr == nil))
	fmt.Fprintf(out, "%s %s\n", theme.Highlight.Render("logs  "), logDir)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	file, err := configFilePath()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(file); statErr == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", file)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), file); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %s\n", app.Theme.CheckMark(true), file)
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaDir != "" {
		path, err := config.GenerateSchemaFile(configSchemaDir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	schema, err := config.Schema()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(schema, '\n'))
	return err
}
