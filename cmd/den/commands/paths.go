package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/den/internal/errors"
	"github.com/thoreinstein/den/internal/paths"
)

var pathsJSON bool

func init() {
	pathsCmd.Flags().BoolVar(&pathsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(pathsCmd)
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the derived data folder paths",
	Long: `Print where den keeps its files.

Resolution precedence: DEN_DATA_DIR (used verbatim), then the home
directory joined with .den, then the working directory as a last
resort.`,
	Example: `  den paths
  den paths --json

  See Also: den init`,
	RunE: runPaths,
}

// resolvedPaths is the JSON shape of the paths output.
type resolvedPaths struct {
	Home       string `json:"home"`
	DataDir    string `json:"dataDir"`
	Settings   string `json:"settings"`
	Extensions string `json:"extensions"`
}

func runPaths(cmd *cobra.Command, _ []string) error {
	r := paths.NewResolver()
	resolved := resolvedPaths{
		Home:       r.UserHome(),
		DataDir:    r.DataDir(),
		Settings:   r.SettingsFile(),
		Extensions: r.ExtensionsDir(),
	}

	if pathsJSON {
		out, err := json.MarshalIndent(resolved, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding paths")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Home:       %s\n", resolved.Home)
	fmt.Fprintf(cmd.OutOrStdout(), "Data:       %s\n", resolved.DataDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Settings:   %s\n", resolved.Settings)
	fmt.Fprintf(cmd.OutOrStdout(), "Extensions: %s\n", resolved.Extensions)
	return nil
}
