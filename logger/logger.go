// SPDX-License-Identifier: MIT

// Package logger holds the process-wide zap logger used by the lvunits CLI.
// Library packages take a *zap.Logger through their WithLogger options and
// never touch this global.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels counted from -v flags.
const (
	VerbosityQuiet = 0 // warnings and errors
	VerbosityInfo  = 1 // -v: catalogues loaded, config file used
	VerbosityDebug = 2 // -vv: every registered unit and kind rule
)

var (
	// Logger is the global logger; a no-op until Initialize runs.
	Logger = zap.NewNop().Sugar()
	// JSONOutput records whether Initialize selected JSON encoding.
	JSONOutput bool
)

// VerbosityToLevel maps a -v count to a zap level.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityQuiet:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New builds a logger writing to w. JSON output uses zap's production
// encoder; otherwise a compact console encoder without timestamps.
func New(w io.Writer, jsonOutput bool, verbosity int) *zap.Logger {
	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), VerbosityToLevel(verbosity)))
}

// Initialize replaces the global logger with one writing to stderr, so
// command output on stdout stays clean.
func Initialize(jsonOutput bool, verbosity int) {
	JSONOutput = jsonOutput
	Logger = New(os.Stderr, jsonOutput, verbosity).Sugar()
}

// Base returns the global logger without the sugar, for WithLogger options.
func Base() *zap.Logger { return Logger.Desugar() }

// Cleanup flushes the global logger. Sync errors on terminals are ignored.
func Cleanup() {
	_ = Logger.Sync()
}
