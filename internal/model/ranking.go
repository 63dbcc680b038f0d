package model

import (
	"cmp"
	"slices"
	"time"
)

// RankedRecord is a record with its 1-based position in a ranking.
type RankedRecord struct {
	// Rank is the 1-based position, in descending order of hits.
	Rank int `json:"rank"`

	Record
}

// Ranking is the outcome of a run, ready to be written by a report writer.
type Ranking struct {
	// Source is the URL the names were read from.
	Source string `json:"source"`

	// GeneratedAt is when the ranking was computed.
	GeneratedAt time.Time `json:"generated_at"`

	// TotalNames is the number of names looked up.
	TotalNames int `json:"total_names"`

	// DegradedCount is the number of lookups that fell back to a zero count.
	DegradedCount int `json:"degraded_count"`

	// Entries holds the top records, highest hit count first.
	Entries []RankedRecord `json:"entries"`
}

// Rank sorts records by hit count, highest first, and returns the first n
// as ranked records. Records with equal counts keep their input order.
// If n is non-positive or larger than len(records), every record is ranked.
// The input slice is not modified.
func Rank(records []Record, n int) []RankedRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return cmp.Compare(b.Hits, a.Hits)
	})

	if n <= 0 || n > len(sorted) {
		n = len(sorted)
	}

	ranked := make([]RankedRecord, n)
	for i := range n {
		ranked[i] = RankedRecord{Rank: i + 1, Record: sorted[i]}
	}
	return ranked
}

// NewRanking ranks records and records run-level totals alongside the top n.
func NewRanking(source string, records []Record, n int) *Ranking {
	degraded := 0
	for _, r := range records {
		if r.Degraded() {
			degraded++
		}
	}

	return &Ranking{
		Source:        source,
		GeneratedAt:   time.Now(),
		TotalNames:    len(records),
		DegradedCount: degraded,
		Entries:       Rank(records, n),
	}
}
