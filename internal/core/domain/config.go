package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a configured level name to a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "", "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, zerr.With(ErrInvalidLogLevel, "level", s)
	}
}

// Tracer names accepted by the tracer setting.
const (
	TracerOTel     = "otel"
	TracerProgrock = "progrock"
	TracerNone     = "none"
)

// Log formats accepted by the log_format setting.
const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

// Config holds the runtime settings of the tool.
type Config struct {
	LogLevel  string       `mapstructure:"log_level"`
	LogFormat string       `mapstructure:"log_format"`
	Tracer    string       `mapstructure:"tracer"`
	Signature string       `mapstructure:"signature"`
	Report    ReportConfig `mapstructure:"report"`
}

// ReportConfig controls hash report persistence.
type ReportConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: LogFormatPretty,
		Tracer:    TracerOTel,
		Report: ReportConfig{
			Dir: DefaultReportsPath(),
		},
	}
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case LogFormatPretty, LogFormatJSON:
	default:
		return zerr.With(ErrInvalidLogFormat, "log_format", c.LogFormat)
	}
	switch c.Tracer {
	case TracerOTel, TracerProgrock, TracerNone:
	default:
		return zerr.With(ErrInvalidTracer, "tracer", c.Tracer)
	}
	return nil
}
