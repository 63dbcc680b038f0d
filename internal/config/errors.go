package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and allow callers to use
// errors.Is() for programmatic handling while still providing human-readable
// messages.
var (
	// ErrEmptySourceURL is returned when no source page URL is configured.
	ErrEmptySourceURL = errors.New("no source URL specified: provide one with --url")

	// ErrInvalidSourceURL is returned when the source URL is not an absolute
	// http or https URL.
	ErrInvalidSourceURL = errors.New("invalid source URL: must be an absolute http(s) URL")

	// ErrInvalidLookupTemplate is returned when the lookup URL template does
	// not contain exactly one name placeholder.
	ErrInvalidLookupTemplate = errors.New("invalid lookup URL template: must contain exactly one {} placeholder")

	// ErrInvalidConcurrency is returned when the worker pool size is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidTopN is returned when the number of ranked entries to report
	// is not positive.
	ErrInvalidTopN = errors.New("invalid top-n: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
