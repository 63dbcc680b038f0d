package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a slog.Logger writing human-readable text lines to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stdout)
//   - verbose: If true, sets log level to Debug; otherwise Info
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, handlerOptions(verbose)))
}

// NewJSONLogger creates a slog.Logger that outputs one JSON object per line.
// It is used when the ranking itself is rendered as JSON so that stdout
// stays machine-readable.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, handlerOptions(verbose)))
}

// handlerOptions returns the level and attribute rewriting shared by both loggers.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: dropTime,
	}
}

// dropTime removes the top-level time attribute from every record.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
