// Package logging builds the zap loggers used by the CLI.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration
type Config struct {
	Level  string // debug, info, warn, error
	Format string // "json" or "console"
	Output string // "stdout", "stderr" or a file path
}

// New creates a logger writing to cfg.Output.
func New(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	output := cfg.Output
	if output == "" {
		output = "stderr"
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.Encoding = encoding(cfg.Format)
	zapConfig.EncoderConfig = encoderConfig(zapConfig.Encoding)
	zapConfig.OutputPaths = []string{output}
	zapConfig.ErrorOutputPaths = []string{output}
	zapConfig.DisableCaller = true
	zapConfig.DisableStacktrace = true
	zapConfig.Sampling = nil

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// NewWriter creates a logger writing to w. Commands use it so log lines
// follow cobra's error stream.
func NewWriter(w io.Writer, cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	enc := encoding(cfg.Format)

	var encoder zapcore.Encoder
	if enc == "json" {
		encoder = zapcore.NewJSONEncoder(encoderConfig(enc))
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig(enc))
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core), nil
}

// ParseLevel parses debug, info, warn or error. Empty means warn.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "", "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.WarnLevel, fmt.Errorf("unknown log level %q", level)
	}
}

func encoding(format string) string {
	if strings.EqualFold(format, "json") {
		return "json"
	}
	return "console"
}

func encoderConfig(enc string) zapcore.EncoderConfig {
	if enc == "json" {
		return zap.NewProductionEncoderConfig()
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	return cfg
}
