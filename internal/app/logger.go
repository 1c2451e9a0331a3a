package app

import (
	"io"
	"log/slog"
	"strings"
)

// logLevels maps the -log-level flag values onto slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the planner's logger on the dedicated log writer, keeping
// the plan output stream clean. Unknown level names fall back to info so a
// typo in the flag never silences the run. The process-global logger is left
// alone.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	level, ok := logLevels[strings.ToLower(levelStr)]
	if !ok {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(logW, opts))
	}
	return slog.New(slog.NewTextHandler(logW, opts))
}
