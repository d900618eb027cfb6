package paths

import (
	"path/filepath"
	"testing"
)

// fakeEnv returns a lookup function over a fixed map.
func fakeEnv(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func newTestResolver(goos string, vars map[string]string, wd string) *Resolver {
	return &Resolver{
		lookupEnv: fakeEnv(vars),
		getwd:     func() (string, error) { return wd, nil },
		goos:      goos,
	}
}

func TestUserHome(t *testing.T) {
	tests := []struct {
		name string
		goos string
		vars map[string]string
		wd   string
		want string
	}{
		{
			name: "HOME on linux",
			goos: "linux",
			vars: map[string]string{"HOME": "/home/jim"},
			want: "/home/jim",
		},
		{
			name: "HOME on darwin",
			goos: "darwin",
			vars: map[string]string{"HOME": "/Users/jim"},
			want: "/Users/jim",
		},
		{
			name: "USERPROFILE on windows",
			goos: "windows",
			vars: map[string]string{"USERPROFILE": `C:\Users\jim`, "HOME": "/ignored"},
			want: `C:\Users\jim`,
		},
		{
			name: "falls back to cwd when unset",
			goos: "linux",
			vars: map[string]string{},
			wd:   "/tmp/work",
			want: "/tmp/work",
		},
		{
			name: "empty value treated as unset",
			goos: "linux",
			vars: map[string]string{"HOME": ""},
			wd:   "/tmp/work",
			want: "/tmp/work",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(tt.goos, tt.vars, tt.wd)
			if got := r.UserHome(); got != tt.want {
				t.Errorf("UserHome() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDataDir(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{
			name: "override used verbatim",
			vars: map[string]string{EnvDataDir: "/var/lib/den", "HOME": "/home/jim"},
			want: "/var/lib/den",
		},
		{
			name: "override ignores home entirely",
			vars: map[string]string{EnvDataDir: "relative/den", "HOME": "/home/jim"},
			want: "relative/den",
		},
		{
			name: "derived from home",
			vars: map[string]string{"HOME": "/home/jim"},
			want: filepath.Join("/home/jim", DataDirName),
		},
		{
			name: "empty override falls through to home",
			vars: map[string]string{EnvDataDir: "", "HOME": "/home/jim"},
			want: filepath.Join("/home/jim", DataDirName),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver("linux", tt.vars, "/cwd")
			if got := r.DataDir(); got != tt.want {
				t.Errorf("DataDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDataDir_CwdFallback(t *testing.T) {
	r := newTestResolver("linux", map[string]string{}, "/cwd")
	want := filepath.Join("/cwd", DataDirName)
	if got := r.DataDir(); got != want {
		t.Errorf("DataDir() = %q, want %q", got, want)
	}
}

func TestSettingsFile(t *testing.T) {
	r := newTestResolver("linux", map[string]string{"HOME": "/home/jim"}, "/cwd")
	want := filepath.Join("/home/jim", DataDirName, SettingsFileName)
	if got := r.SettingsFile(); got != want {
		t.Errorf("SettingsFile() = %q, want %q", got, want)
	}
}

func TestExtensionsDir(t *testing.T) {
	r := newTestResolver("linux", map[string]string{"HOME": "/home/jim"}, "/cwd")
	want := filepath.Join("/home/jim", DataDirName, ExtensionsDirName)
	if got := r.ExtensionsDir(); got != want {
		t.Errorf("ExtensionsDir() = %q, want %q", got, want)
	}
}

func TestNewResolver_UsesProcessEnv(t *testing.T) {
	t.Setenv(EnvDataDir, "/opt/den-data")

	r := NewResolver()
	if got := r.DataDir(); got != "/opt/den-data" {
		t.Errorf("DataDir() = %q, want %q", got, "/opt/den-data")
	}
	if got := r.SettingsFile(); got != filepath.Join("/opt/den-data", SettingsFileName) {
		t.Errorf("SettingsFile() = %q, want under override", got)
	}
}
