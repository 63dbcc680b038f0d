package scrape

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/nao1215/mathrank/internal/fetch"
	"github.com/nao1215/mathrank/internal/model"
)

// NamePlaceholder marks where the name goes in a lookup URL template.
const NamePlaceholder = "{}"

// PopularityLookup fetches the lookup page for a name and extracts its
// popularity count. It never fails: every problem degrades to a zero-count
// record whose Status says what went wrong.
type PopularityLookup struct {
	// getter fetches lookup pages.
	getter fetch.Getter

	// template is the lookup URL with a {} placeholder for the name.
	template string

	// extractor finds the count on a lookup page.
	extractor HitsExtractor

	// logger receives one entry per degraded lookup.
	logger *slog.Logger
}

// LookupOption configures a PopularityLookup.
type LookupOption func(*PopularityLookup)

// WithHitsExtractor replaces the default MarkerAnchorExtractor.
func WithHitsExtractor(extractor HitsExtractor) LookupOption {
	return func(l *PopularityLookup) {
		if extractor != nil {
			l.extractor = extractor
		}
	}
}

// WithLookupLogger sets the logger used to report degraded lookups.
func WithLookupLogger(logger *slog.Logger) LookupOption {
	return func(l *PopularityLookup) {
		l.logger = logger
	}
}

// NewPopularityLookup creates a lookup that fetches pages through getter.
// template must contain a single {} placeholder for the name.
func NewPopularityLookup(getter fetch.Getter, template string, opts ...LookupOption) *PopularityLookup {
	l := &PopularityLookup{
		getter:    getter,
		template:  template,
		extractor: NewMarkerAnchorExtractor(DefaultHitsMarker),
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = slog.Default()
	}

	return l
}

// URLFor returns the lookup URL for name. The name is percent-encoded as a
// single path segment, so spaces, slashes and non-ASCII letters survive.
func (l *PopularityLookup) URLFor(name string) string {
	return strings.Replace(l.template, NamePlaceholder, url.PathEscape(name), 1)
}

// Lookup returns the popularity record for name.
func (l *PopularityLookup) Lookup(ctx context.Context, name string) model.Record {
	lookupURL := l.URLFor(name)

	page, err := l.getter.Get(ctx, lookupURL)
	if err != nil {
		l.logger.Warn("lookup fetch failed", "name", name, "url", lookupURL, "error", err)
		return model.NewDegradedRecord(name, model.StatusFetchFailed, err.Error())
	}

	doc, err := Parse(page)
	if err != nil {
		l.logger.Warn("could not parse lookup page", "name", name, "url", lookupURL, "error", err)
		return model.NewDegradedRecord(name, model.StatusNoData, err.Error())
	}

	hits, err := l.extractor.ExtractHits(doc)
	switch {
	case err == nil:
		l.logger.Debug("lookup completed", "name", name, "hits", hits)
		return model.NewRecord(name, hits)
	case errors.Is(err, ErrNoHits):
		l.logger.Warn("no page views found", "name", name)
		return model.NewDegradedRecord(name, model.StatusNoData, err.Error())
	default:
		l.logger.Warn("could not parse page views", "name", name, "error", err)
		return model.NewDegradedRecord(name, model.StatusUnparseable, err.Error())
	}
}
