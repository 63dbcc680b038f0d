package config

import (
	"net/url"
	"strings"

	"github.com/nao1215/mathrank/internal/fetch"
	"github.com/nao1215/mathrank/internal/scrape"
)

// Default configuration values.
const (
	// DefaultSourceURL is the page listing the mathematicians to rank.
	DefaultSourceURL = "http://www.fabpedigree.com/james/mathmen.htm"

	// DefaultLookupURLTemplate is the XTools article info page. The {}
	// placeholder is replaced by the percent-encoded name.
	DefaultLookupURLTemplate = "https://xtools.wmflabs.org/articleinfo/en.wikipedia.org/{}"

	// NamePlaceholder marks where the name goes in a lookup URL template.
	NamePlaceholder = scrape.NamePlaceholder

	// DefaultHitsMarker identifies the "page views in the last 60 days" link
	// on the article info page.
	DefaultHitsMarker = scrape.DefaultHitsMarker

	// DefaultConcurrency is the number of lookups allowed in flight at once.
	// Higher values were observed to overwhelm the lookup service.
	DefaultConcurrency = 25

	// DefaultTopN is the number of ranked entries printed.
	DefaultTopN = 10

	// DefaultUserAgent identifies mathrank in HTTP requests.
	DefaultUserAgent = fetch.DefaultUserAgent

	// DefaultMaxBodySize limits the response body size read per page.
	DefaultMaxBodySize = fetch.DefaultMaxBodySize

	// AppName is the application name used for the command and in reports.
	AppName = "mathrank"
)

// Config holds all configuration options for a ranking run.
// It is populated from CLI flags and passed through the application rather
// than kept in global state.
type Config struct {
	// SourceURL is the page whose list items hold the names to rank.
	SourceURL string

	// LookupURLTemplate is the popularity lookup URL with a {} placeholder
	// for the percent-encoded name.
	LookupURLTemplate string

	// HitsMarker is the substring an anchor's href must contain to be
	// treated as the popularity statistic.
	HitsMarker string

	// Concurrency is the size of the lookup worker pool.
	Concurrency int

	// TopN is the number of ranked entries reported.
	TopN int

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Set to 0 to use the default (5MB).
	MaxBodySize int64

	// Verbose enables debug-level log output.
	Verbose bool

	// JSONReport renders the ranking as JSON instead of text lines.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport renders the ranking as a Markdown document.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		SourceURL:         DefaultSourceURL,
		LookupURLTemplate: DefaultLookupURLTemplate,
		HitsMarker:        DefaultHitsMarker,
		Concurrency:       DefaultConcurrency,
		TopN:              DefaultTopN,
		UserAgent:         DefaultUserAgent,
		MaxBodySize:       DefaultMaxBodySize,
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SourceURL) == "" {
		return ErrEmptySourceURL
	}

	u, err := url.Parse(c.SourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidSourceURL
	}

	if strings.Count(c.LookupURLTemplate, NamePlaceholder) != 1 {
		return ErrInvalidLookupTemplate
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.TopN <= 0 {
		return ErrInvalidTopN
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
