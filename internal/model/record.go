package model

// Status describes how a record's hit count was obtained.
//
// The count of every degraded record is 0, which is indistinguishable by
// count from a genuine zero-hit result. Status keeps the distinction for
// reports and logs without changing how records rank.
type Status string

const (
	// StatusFound means the popularity statistic was found and parsed.
	StatusFound Status = "found"

	// StatusNoData means the lookup page had no popularity statistic.
	StatusNoData Status = "no_data"

	// StatusUnparseable means the statistic was found but its text was not a number.
	StatusUnparseable Status = "unparseable"

	// StatusFetchFailed means the lookup page could not be fetched.
	StatusFetchFailed Status = "fetch_failed"
)

// Record is the popularity of a single name.
type Record struct {
	// Name is the trimmed name as extracted from the source page.
	Name string `json:"name"`

	// Hits is the non-negative popularity count (page views in the last 60 days).
	Hits int `json:"hits"`

	// Status tells a genuine count from a degraded zero.
	Status Status `json:"status"`

	// Reason is a human-readable explanation for degraded records.
	Reason string `json:"reason,omitempty"`
}

// NewRecord creates a record for a successfully parsed count.
func NewRecord(name string, hits int) Record {
	return Record{Name: name, Hits: hits, Status: StatusFound}
}

// NewDegradedRecord creates a zero-count record for a failed lookup.
func NewDegradedRecord(name string, status Status, reason string) Record {
	return Record{Name: name, Hits: 0, Status: status, Reason: reason}
}

// Degraded reports whether the record's count is a fallback zero.
func (r Record) Degraded() bool {
	return r.Status != StatusFound
}
