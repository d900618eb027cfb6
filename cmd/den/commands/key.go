package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/den/internal/errors"
	"github.com/thoreinstein/den/internal/keyring"
	"github.com/thoreinstein/den/internal/logging"
	"github.com/thoreinstein/den/internal/settings"
)

func init() {
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Print the effective encryption key",
	Long: `Print the encryption key the credential store will use.

A non-empty DEN_ENCRYPTION_KEY environment variable wins over the
persisted key; the settings document is left untouched either way.`,
	Example: `  # Print the key
  den key

  # Feed it to another tool
  den key | some-credential-tool --key-stdin

  See Also: den init`,
	RunE: runKey,
}

func runKey(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())
	store := settings.NewStore(nil, logger)
	provisioner := keyring.NewProvisioner(store, logger)

	key, found, err := provisioner.EffectiveKey()
	if err != nil {
		return errors.NewUserError(err, "fix or remove the settings file and retry")
	}
	if !found {
		return errors.NewUserError(errors.ErrNoKey, "Run: den init")
	}

	fmt.Fprintln(cmd.OutOrStdout(), key)
	return nil
}
