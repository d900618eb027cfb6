package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/den/internal/config"
	"github.com/thoreinstein/den/internal/errors"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite existing configuration")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the CLI's own configuration",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the CLI configuration file",
	Long: `Bootstrap the den CLI configuration with default values.

Creates config.yaml under the XDG config home. This file holds CLI
preferences (log format and level) only; the managed settings document
is separate and created by 'den init'.`,
	Example: `  # Create the config file
  den config init

  # Overwrite an existing one
  den config init --force

  See Also: den init`,
	RunE: runConfigInit,
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := filepath.Join(config.Dir(), "config.yaml")

	if _, err := os.Stat(configPath); err == nil && !configInitForce {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(cmd.OutOrStdout(), "Use --force to overwrite")
		return nil
	}

	if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}
