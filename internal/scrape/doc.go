// Package scrape turns fetched HTML into names and popularity counts.
//
// # Components
//
//   - Parse: decodes a fetched page (honouring its charset) into a goquery document
//   - NameExtractor: collects the set of names listed on the source page
//   - HitsExtractor: finds the popularity statistic on a lookup page
//   - PopularityLookup: returns the count for one name
//
// Both extractors are heuristics tied to the markup of the pages being
// scraped (every list item is a candidate name, the first anchor whose href
// contains a marker holds the count). They sit behind interfaces so the
// matching rules can change without touching the pipeline that drives them.
//
// Pages are parsed with goquery on top of golang.org/x/net/html.
package scrape
