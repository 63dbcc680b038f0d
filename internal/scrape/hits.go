package scrape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultHitsMarker identifies the link to the "last 60 days" page view
// statistic on an XTools article info page.
const DefaultHitsMarker = "latest-60"

// Hits extraction errors.
var (
	// ErrNoHits is returned when the lookup page has no popularity statistic.
	ErrNoHits = errors.New("no page views found")

	// ErrUnparseableHits is returned when the statistic's text is not a
	// non-negative integer.
	ErrUnparseableHits = errors.New("could not parse page views")
)

// HitsExtractor finds the popularity count on a parsed lookup page.
type HitsExtractor interface {
	// ExtractHits returns the count, ErrNoHits when the page carries none,
	// or an error wrapping ErrUnparseableHits when it cannot be read.
	ExtractHits(doc *goquery.Document) (int, error)
}

// MarkerAnchorExtractor reads the count from the text of the first anchor
// whose href contains a marker substring.
type MarkerAnchorExtractor struct {
	marker string
}

// NewMarkerAnchorExtractor creates an extractor matching hrefs that contain
// marker. An empty marker selects DefaultHitsMarker.
func NewMarkerAnchorExtractor(marker string) *MarkerAnchorExtractor {
	if marker == "" {
		marker = DefaultHitsMarker
	}
	return &MarkerAnchorExtractor{marker: marker}
}

// ExtractHits implements HitsExtractor.
func (e *MarkerAnchorExtractor) ExtractHits(doc *goquery.Document) (int, error) {
	var anchor *goquery.Selection

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if strings.Contains(href, e.marker) {
			anchor = a
			return false
		}
		return true
	})

	if anchor == nil {
		return 0, ErrNoHits
	}

	return ParseHits(anchor.Text())
}

// ParseHits converts a displayed count such as "12,345" into an integer.
// Surrounding whitespace and thousands separators are ignored.
func ParseHits(text string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")

	hits, err := strconv.Atoi(cleaned)
	if err != nil || hits < 0 {
		return 0, fmt.Errorf("%w: %q is not a count", ErrUnparseableHits, text)
	}

	return hits, nil
}
