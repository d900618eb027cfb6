package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/thoreinstein/den/internal/paths"
)

func TestPathsCommand_Metadata(t *testing.T) {
	if pathsCmd.Use != "paths" {
		t.Errorf("Use = %q, want %q", pathsCmd.Use, "paths")
	}
	if pathsCmd.Flags().Lookup("json") == nil {
		t.Error("--json flag should be defined")
	}
}

func TestRunPaths_Tabular(t *testing.T) {
	t.Setenv(paths.EnvDataDir, "/opt/den-data")

	cmd, buf := newTestCommand(t)
	pathsJSON = false
	if err := runPaths(cmd, nil); err != nil {
		t.Fatalf("runPaths() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "/opt/den-data") {
		t.Errorf("output missing data dir: %q", out)
	}
	if !strings.Contains(out, paths.SettingsFileName) {
		t.Errorf("output missing settings path: %q", out)
	}
}

func TestRunPaths_JSON(t *testing.T) {
	t.Setenv(paths.EnvDataDir, "/opt/den-data")

	cmd, buf := newTestCommand(t)
	pathsJSON = true
	t.Cleanup(func() { pathsJSON = false })

	if err := runPaths(cmd, nil); err != nil {
		t.Fatalf("runPaths() error = %v", err)
	}

	var got resolvedPaths
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.DataDir != "/opt/den-data" {
		t.Errorf("DataDir = %q, want %q", got.DataDir, "/opt/den-data")
	}
	if !strings.HasSuffix(got.Extensions, paths.ExtensionsDirName) {
		t.Errorf("Extensions = %q, want suffix %q", got.Extensions, paths.ExtensionsDirName)
	}
}
