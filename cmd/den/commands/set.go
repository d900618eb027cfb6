package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/den/internal/errors"
	"github.com/thoreinstein/den/internal/logging"
	"github.com/thoreinstein/den/internal/settings"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a top-level settings field",
	Long: `Merge a field into the settings document.

The value is parsed as JSON when possible (numbers, booleans, objects,
arrays); anything else is stored as a string. The rest of the document,
including the encryption key, is preserved.`,
	Example: `  den set theme dark
  den set telemetry false
  den set limits '{"maxItems": 10}'

  See Also: den get`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	field, raw := args[0], args[1]
	logger := logging.FromContext(cmd.Context())
	store := settings.NewStore(nil, logger)

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		// Not valid JSON: store the literal string.
		value = raw
	}

	if _, err := store.Merge(settings.Document{field: value}, ""); err != nil {
		return errors.NewSystemError(err, "check permissions on the data folder")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", field)
	return nil
}
