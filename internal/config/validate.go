package config

import "errors"

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidLogFormat indicates an unrecognized log format.
	ErrInvalidLogFormat = errors.New("log_format must be one of: text, json")

	// ErrInvalidLogLevel indicates an unrecognized log level.
	ErrInvalidLogLevel = errors.New("log_level must be one of: debug, info, warn, error")
)

var validLogFormats = map[string]struct{}{
	"text": {},
	"json": {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.LogFormat != "" {
		if _, ok := validLogFormats[cfg.LogFormat]; !ok {
			errs = append(errs, ErrInvalidLogFormat)
		}
	}

	if cfg.LogLevel != "" {
		if _, ok := validLogLevels[cfg.LogLevel]; !ok {
			errs = append(errs, ErrInvalidLogLevel)
		}
	}

	return errs
}
