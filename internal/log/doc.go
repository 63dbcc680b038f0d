// Package log builds the console logger used by mathrank, on top of the
// standard slog package.
//
// Every component accepts a *slog.Logger through a functional option and
// falls back to slog.Default(), so the logger built here is the single sink
// for fetch failures, missing popularity data and progress messages.
//
// # Usage
//
//	logger := log.NewLogger(os.Stdout, verbose)
//	slog.SetDefault(logger)
//
//	logger.Warn("no page views found", "name", "Carl Friedrich Gauss")
//
// Output is slog's key=value text format without the time attribute, so
// log lines read naturally when they are interleaved with the ranking.
package log
