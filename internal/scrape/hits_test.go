package scrape

import (
	"errors"
	"testing"
)

func TestMarkerAnchorExtractor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		markup  string
		want    int
		wantErr error
	}{
		{
			name:   "strips thousands separators",
			markup: `<a href="https://en.wikipedia.org/wiki/Special:PageViews/latest-60">12,345</a>`,
			want:   12345,
		},
		{
			name:   "plain number with whitespace",
			markup: "<a href=\"/pageviews?range=latest-60\">\n  987 \n</a>",
			want:   987,
		},
		{
			name:   "zero is a genuine count",
			markup: `<a href="/latest-60">0</a>`,
			want:   0,
		},
		{
			name: "first matching anchor wins",
			markup: `<a href="/history">1,000</a>
				<a href="/pageviews/latest-60">2,500</a>
				<a href="/pageviews/latest-60?second">9,999</a>`,
			want: 2500,
		},
		{
			name:   "nested markup inside anchor",
			markup: `<a href="/latest-60"><span>1,234,567</span></a>`,
			want:   1234567,
		},
		{
			name:    "no matching anchor",
			markup:  `<a href="/latest-30">50</a><a>no href</a>`,
			wantErr: ErrNoHits,
		},
		{
			name:    "no anchors at all",
			markup:  `<p>Article not found</p>`,
			wantErr: ErrNoHits,
		},
		{
			name:    "non-numeric text",
			markup:  `<a href="/latest-60">N/A</a>`,
			wantErr: ErrUnparseableHits,
		},
		{
			name:    "empty text",
			markup:  `<a href="/latest-60"></a>`,
			wantErr: ErrUnparseableHits,
		},
		{
			name:    "negative count",
			markup:  `<a href="/latest-60">-5</a>`,
			wantErr: ErrUnparseableHits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewMarkerAnchorExtractor("latest-60").ExtractHits(mustParse(t, tt.markup))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if got != 0 {
					t.Errorf("expected 0 on error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractHits() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewMarkerAnchorExtractorDefaultsMarker(t *testing.T) {
	t.Parallel()

	e := NewMarkerAnchorExtractor("")
	if e.marker != DefaultHitsMarker {
		t.Errorf("expected marker %q, got %q", DefaultHitsMarker, e.marker)
	}

	custom := NewMarkerAnchorExtractor("latest-30")
	got, err := custom.ExtractHits(mustParse(t, `<a href="/latest-60">1</a><a href="/latest-30">30</a>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 30 {
		t.Errorf("expected custom marker to select 30, got %d", got)
	}
}

func TestParseHits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		want    int
		wantErr bool
	}{
		{"12,345", 12345, false},
		{" 7 ", 7, false},
		{"1,000,000", 1000000, false},
		{"N/A", 0, true},
		{"12.5", 0, true},
		{"", 0, true},
		{"-1", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseHits(tt.text)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHits(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHits(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
