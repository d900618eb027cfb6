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
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <field>",
	Short: "Print a top-level settings field",
	Long:  `Print the value of a top-level settings field as JSON.`,
	Example: `  den get theme
  den get telemetry

  See Also: den set`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	field := args[0]
	logger := logging.FromContext(cmd.Context())
	store := settings.NewStore(nil, logger)

	doc, found, err := store.Load("", false)
	if err != nil {
		return errors.NewUserError(err, "fix or remove the settings file and retry")
	}
	if !found {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "no settings file"), "Run: den init")
	}

	value, ok := doc[field]
	if !ok {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "field %q", field), "Run: den set "+field+" <value>")
	}

	out, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encoding field %q", field)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
