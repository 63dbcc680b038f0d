package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Default request settings.
const (
	// DefaultUserAgent identifies mathrank in HTTP requests.
	DefaultUserAgent = "mathrank/1.0 (+https://github.com/nao1215/mathrank)"

	// DefaultMaxBodySize limits the response body size read per page.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB
)

// Page is a successfully fetched HTML document.
type Page struct {
	// URL is the requested URL.
	URL string

	// StatusCode is the HTTP response status code (always 200 for a Page).
	StatusCode int

	// ContentType is the raw Content-Type header, kept for charset detection.
	ContentType string

	// Body is the response body, truncated to the fetcher's max body size.
	Body []byte
}

// Getter fetches a single URL. *Fetcher implements it; tests substitute
// their own implementations.
type Getter interface {
	Get(ctx context.Context, rawURL string) (*Page, error)
}

// Fetcher performs blocking HTTP GET requests and accepts only HTML responses.
type Fetcher struct {
	// client is the HTTP client used for every request.
	client *http.Client

	// userAgent is the User-Agent header to use.
	userAgent string

	// maxBodySize limits the size of response bodies to read.
	maxBodySize int64

	// logger receives one entry per failed request.
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the HTTP client.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxBodySize sets the maximum response body size.
// Non-positive values keep the default.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithLogger sets the logger used to report failed requests.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// New creates a Fetcher. Without WithClient it uses a plain http.Client with
// no overall timeout.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{},
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = slog.Default()
	}

	return f
}

// Get fetches rawURL and returns its body if the response is a 200 with an
// HTML Content-Type. Every failure is returned as *Error and logged at
// debug level; reporting it is left to the caller.
func (f *Fetcher) Get(ctx context.Context, rawURL string) (*Page, error) {
	page, err := f.get(ctx, rawURL)
	if err != nil {
		f.logger.Debug("fetch failed", "url", rawURL, "error", err)
		return nil, err
	}
	return page, nil
}

// get does the work of Get without logging.
func (f *Fetcher) get(ctx context.Context, rawURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Reason: ReasonTransport, Err: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Reason: ReasonTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			URL:    rawURL,
			Reason: ReasonStatus,
			Err:    fmt.Errorf("%w: %s", ErrBadStatus, resp.Status),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if !isHTML(contentType) {
		return nil, &Error{
			URL:    rawURL,
			Reason: ReasonNotHTML,
			Err:    fmt.Errorf("%w: content type %q", ErrNotHTML, contentType),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, &Error{URL: rawURL, Reason: ReasonRead, Err: err}
	}

	return &Page{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}

// isHTML reports whether a Content-Type header names some kind of HTML.
// It matches text/html and application/xhtml+xml alike.
func isHTML(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "html")
}
