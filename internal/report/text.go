package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/mathrank/internal/model"
)

// TextWriter outputs one line per ranked entry:
//
//	1 -> Isaac Newton has 123456 hits
//
// Counts are printed without thousands separators so the output is easy to
// process with standard text tools.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the ranking entries. An empty ranking writes nothing.
func (w *TextWriter) Write(ranking *model.Ranking) (int, error) {
	var sb strings.Builder
	for _, entry := range ranking.Entries {
		sb.WriteString(fmt.Sprintf("%d -> %s has %d hits\n", entry.Rank, entry.Name, entry.Hits))
	}
	return io.WriteString(w.output, sb.String())
}
