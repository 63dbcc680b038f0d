package scrape

import (
	"maps"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NameExtractor collects candidate names from a parsed source page.
type NameExtractor interface {
	// ExtractNames returns the distinct names found in doc.
	// A document without names yields an empty slice, not an error.
	ExtractNames(doc *goquery.Document) []string
}

// ListItemExtractor treats every line of text inside an <li> element as a name.
//
// Every list item in the document is scanned, including items of nested
// lists, so a nested item's text is seen both on its own and as part of its
// parent. Duplicates collapse into one name.
type ListItemExtractor struct{}

// ExtractNames splits the text of every list item on newlines, trims each
// fragment and returns the distinct non-empty fragments in sorted order.
func (ListItemExtractor) ExtractNames(doc *goquery.Document) []string {
	seen := make(map[string]struct{})

	doc.Find("li").Each(func(_ int, item *goquery.Selection) {
		for _, fragment := range strings.Split(item.Text(), "\n") {
			name := strings.TrimSpace(fragment)
			if name == "" {
				continue
			}
			seen[name] = struct{}{}
		}
	})

	return slices.Sorted(maps.Keys(seen))
}
