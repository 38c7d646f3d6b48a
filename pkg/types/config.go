package types

import "errors"

// Config holds the settings the agility CLI reads from config.yaml.
type Config struct {
	Manifest  string `json:"manifest" yaml:"manifest" mapstructure:"manifest"`
	LogLevel  string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
}

// Supported log levels and formats.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config validation errors.
var (
	ErrLogLevelUnknown  = errors.New("unknown log level")
	ErrLogFormatUnknown = errors.New("unknown log format")
)

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

var knownLogFormats = map[string]bool{
	LogFormatText: true,
	LogFormatJSON: true,
}

// Validate checks that the Config is well-formed. Empty log settings are
// accepted and fall back to defaults at the call site.
func (c Config) Validate() error {
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if c.LogFormat != "" && !knownLogFormats[c.LogFormat] {
		return ErrLogFormatUnknown
	}
	return nil
}
