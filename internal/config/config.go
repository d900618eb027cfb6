// Package config provides configuration management for the den CLI using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// AppName is the application name used for config file naming.
const AppName = "den"

// Config represents the CLI's own preferences. It is distinct from the
// managed settings document and never participates in settings path
// resolution.
type Config struct {
	Version   int    `mapstructure:"version" yaml:"version"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Version:   1,
		LogFormat: "text",
		LogLevel:  "info",
	}
}

// Dir returns the directory holding the CLI config file.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(Dir())

	// Environment variable support
	viper.SetEnvPrefix("DEN")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("log_format", "text")
	viper.SetDefault("log_level", "info")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), defaults apply
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("validating config: %w", errs[0])
	}

	return &cfg, nil
}
