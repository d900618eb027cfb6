// Package config provides configuration management for the den CLI.
//
// This package handles the CLI's own preferences file (log format and
// level). It is deliberately separate from the managed settings
// document owned by the settings package: the preferences file never
// holds secrets and never influences settings path resolution.
//
// # Configuration File
//
// The default location is <XDG config home>/den/config.yaml:
//
//	version: 1
//	log_format: text   # or json
//	log_level: info    # debug, info, warn, error
//
// # Loading
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Loaded configurations are validated automatically; [Validate] can be
// used directly on hand-built values.
package config
