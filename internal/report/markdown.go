package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nao1215/mathrank/internal/config"
	"github.com/nao1215/mathrank/internal/model"
)

// MarkdownWriter outputs the ranking as a GitHub-flavoured Markdown document.
// Counts are printed with thousands separators for the configured language.
type MarkdownWriter struct {
	baseWriter

	// printer formats counts for human readers.
	printer *message.Printer
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithLanguage sets the language used to format counts.
func WithLanguage(tag language.Tag) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.printer = message.NewPrinter(tag)
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
// Counts are formatted for English unless WithLanguage is given.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		printer:    message.NewPrinter(language.English),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the ranking in Markdown format.
func (w *MarkdownWriter) Write(ranking *model.Ranking) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, ranking)
	w.writeEntries(md, ranking)
	w.writePieChart(md, ranking)
	w.writeAlert(md, ranking)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and run summary.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, ranking *model.Ranking) {
	md.H1("Most Popular Mathematicians")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", ranking.Source},
			{"Generated", ranking.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Names Looked Up", strconv.Itoa(ranking.TotalNames)},
			{"Lookups Without Data", strconv.Itoa(ranking.DegradedCount)},
		},
	})
	md.PlainText("")
}

// writeEntries writes the ranking table.
func (w *MarkdownWriter) writeEntries(md *markdown.Markdown, ranking *model.Ranking) {
	md.H2("Ranking")
	md.PlainText("")

	if len(ranking.Entries) == 0 {
		md.PlainText("No names were found on the source page.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(ranking.Entries))
	for i, entry := range ranking.Entries {
		rows[i] = []string{
			strconv.Itoa(entry.Rank),
			entry.Name,
			w.printer.Sprintf("%d", entry.Hits),
			statusText(entry.Record),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Name", "Hits (last 60 days)", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the ranked hit counts.
// Entries with zero hits are left out; nothing is written if none remain.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, ranking *model.Ranking) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Share of Page Views"),
		piechart.WithShowData(true),
	)

	plotted := 0
	for _, entry := range ranking.Entries {
		if entry.Hits <= 0 {
			continue
		}
		chart.LabelAndIntValue(entry.Name, uint64(entry.Hits))
		plotted++
	}

	if plotted == 0 {
		return
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert notes how trustworthy the zero counts are.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, ranking *model.Ranking) {
	switch {
	case ranking.TotalNames == 0:
		md.Warningf("The source page listed no names.")
	case ranking.DegradedCount > 0:
		md.Note(fmt.Sprintf(
			"%d of %d lookups returned no usable data and were counted as 0 hits.",
			ranking.DegradedCount, ranking.TotalNames,
		))
	default:
		md.Tip("Every lookup returned page view data.")
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [%s](https://github.com/nao1215/mathrank)*", config.AppName)
}

// statusText describes a record's status for human readers.
func statusText(r model.Record) string {
	switch r.Status {
	case model.StatusFound:
		return "✅ found"
	case model.StatusNoData:
		return "⚠️ no data"
	case model.StatusUnparseable:
		return "⚠️ unparseable"
	case model.StatusFetchFailed:
		return "❌ fetch failed"
	default:
		return string(r.Status)
	}
}
