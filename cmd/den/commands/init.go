package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/den/internal/errors"
	"github.com/thoreinstein/den/internal/keyring"
	"github.com/thoreinstein/den/internal/logging"
	"github.com/thoreinstein/den/internal/paths"
	"github.com/thoreinstein/den/internal/settings"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Provision the credential encryption key",
	Long: `Ensure the settings document carries an encryption key.

Creates the data folder and settings file on first run. Once a key is
persisted it is never regenerated; running init again is a no-op.`,
	Example: `  # Provision the key (safe to repeat)
  den init

  See Also: den key, den paths`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())
	resolver := paths.NewResolver()
	store := settings.NewStore(resolver, logger)
	provisioner := keyring.NewProvisioner(store, logger)

	doc, found, err := store.Load("", false)
	if err != nil {
		return errors.NewUserError(err, "fix or remove the settings file and retry")
	}
	existing := false
	if found {
		if key, ok := doc[keyring.Field].(string); ok && key != "" {
			existing = true
		}
	}

	if _, err := provisioner.EnsureKey(); err != nil {
		return errors.NewSystemError(err, "check permissions on the data folder")
	}

	if existing {
		fmt.Fprintf(cmd.OutOrStdout(), "Encryption key already provisioned in %s\n", resolver.SettingsFile())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Encryption key provisioned in %s\n", resolver.SettingsFile())
	}
	return nil
}
