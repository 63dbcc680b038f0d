// Package report writes a ranking in one of several formats.
//
//   - TextWriter: one "<rank> -> <name> has <count> hits" line per entry
//   - JSONWriter: the full ranking, including degraded-lookup details
//   - MarkdownWriter: a table, a mermaid pie chart and a data-quality note
//
// Writers only render a model.Ranking; computing the ranking is the caller's
// job. They implement the Writer interface so the CLI picks one at runtime.
package report
