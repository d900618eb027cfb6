package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Fixed names for the den data folder layout. External consumers
// (the credential store, the extension loader) depend on these staying
// stable.
const (
	// DataDirName is the folder created under the user's home directory.
	DataDirName = ".den"

	// SettingsFileName is the settings document filename inside the data folder.
	SettingsFileName = "settings.json"

	// ExtensionsDirName is the custom extensions subdirectory inside the data folder.
	ExtensionsDirName = "extensions"
)

// Environment variables honored during path and key resolution.
const (
	// EnvDataDir overrides the computed data folder wholesale.
	// Its value is used verbatim, never appended to the home directory.
	EnvDataDir = "DEN_DATA_DIR"

	// EnvEncryptionKey bypasses the persisted encryption key for
	// effective-key lookups. It never touches the settings document.
	EnvEncryptionKey = "DEN_ENCRYPTION_KEY"
)

// Home directory environment variables by platform.
const (
	envHomePosix   = "HOME"
	envHomeWindows = "USERPROFILE"
)

// Resolver computes the on-disk locations of the den data folder and
// its contents. Resolution is pure over the injected environment and
// working directory; no method performs I/O.
//
// Derivation precedence, highest first:
//  1. explicit path arguments accepted by the settings store,
//  2. EnvDataDir (whole-folder substitution),
//  3. home directory variable + DataDirName,
//  4. current working directory + DataDirName.
type Resolver struct {
	lookupEnv func(string) (string, bool)
	getwd     func() (string, error)
	goos      string
}

// NewResolver returns a Resolver backed by the real process
// environment and working directory.
func NewResolver() *Resolver {
	return &Resolver{
		lookupEnv: os.LookupEnv,
		getwd:     os.Getwd,
		goos:      runtime.GOOS,
	}
}

func (r *Resolver) homeEnvVar() string {
	if r.goos == "windows" {
		return envHomeWindows
	}
	return envHomePosix
}

// UserHome returns the home directory named by the platform environment
// variable (HOME, or USERPROFILE on Windows). When the variable is
// unset or empty it falls back to the current working directory.
func (r *Resolver) UserHome() string {
	if home, ok := r.lookupEnv(r.homeEnvVar()); ok && home != "" {
		return home
	}
	if wd, err := r.getwd(); err == nil {
		return wd
	}
	return "."
}

// DataDir returns the den data folder. An EnvDataDir override is
// returned verbatim; otherwise the folder lives under UserHome.
func (r *Resolver) DataDir() string {
	if dir, ok := r.lookupEnv(EnvDataDir); ok && dir != "" {
		return dir
	}
	return filepath.Join(r.UserHome(), DataDirName)
}

// SettingsFile returns the path of the settings document.
func (r *Resolver) SettingsFile() string {
	return filepath.Join(r.DataDir(), SettingsFileName)
}

// ExtensionsDir returns the custom extensions directory consumed by
// the extension loader.
func (r *Resolver) ExtensionsDir() string {
	return filepath.Join(r.DataDir(), ExtensionsDirName)
}
