package scrape

import (
	"bytes"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/nao1215/mathrank/internal/fetch"
)

// Parse builds a queryable document from a fetched page.
// The body is decoded to UTF-8 using the charset from the page's
// Content-Type, a <meta> declaration, or content sniffing, in that order.
func Parse(page *fetch.Page) (*goquery.Document, error) {
	return ParseReader(bytes.NewReader(page.Body), page.ContentType)
}

// ParseReader builds a queryable document from raw markup.
// contentType may be empty, in which case the charset is detected from the
// content itself.
func ParseReader(r io.Reader, contentType string) (*goquery.Document, error) {
	decoded, err := charset.NewReader(r, contentType)
	if err != nil {
		// Only a failed preview read ends up here, as with an empty body.
		decoded = r
	}
	return goquery.NewDocumentFromReader(decoded)
}
