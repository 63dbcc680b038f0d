package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/mathrank/internal/config"
	"github.com/nao1215/mathrank/internal/fetch"
	"github.com/nao1215/mathrank/internal/log"
	"github.com/nao1215/mathrank/internal/model"
	"github.com/nao1215/mathrank/internal/pipeline"
	"github.com/nao1215/mathrank/internal/report"
	"github.com/nao1215/mathrank/internal/scrape"
)

// runRankCmd executes a ranking run from the root command.
func runRankCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runRank(ctx, cfg, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.SourceURL, err = cmd.Flags().GetString("url")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// setupLogger creates the logger for a run.
// Text output shares stdout with the log lines. JSON and Markdown reports
// keep stdout clean by logging to stderr.
func setupLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	switch {
	case cfg.JSONReport:
		return log.NewJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	case cfg.MarkdownReport:
		return log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	default:
		return log.NewLogger(cmd.OutOrStdout(), cfg.Verbose)
	}
}

// newReportWriter returns the writer selected by the report flags.
func newReportWriter(cfg *config.Config, out io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out)
	default:
		return report.NewTextWriter(out)
	}
}

// runRank fetches the source page, looks up every name on it and writes the
// top entries to out. Only a source page that cannot be fetched or parsed
// is an error; individual lookups degrade to zero-count records.
func runRank(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	fetcher := fetch.New(
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
		fetch.WithLogger(logger),
	)

	page, err := fetcher.Get(ctx, cfg.SourceURL)
	if err != nil {
		return fmt.Errorf("failed to fetch source page %s: %w", cfg.SourceURL, err)
	}

	doc, err := scrape.Parse(page)
	if err != nil {
		return fmt.Errorf("failed to parse source page %s: %w", cfg.SourceURL, err)
	}

	names := scrape.ListItemExtractor{}.ExtractNames(doc)
	if len(names) == 0 {
		logger.Warn("no names found on source page", "url", cfg.SourceURL)
	}
	logger.Debug("names extracted", "url", cfg.SourceURL, "count", len(names))

	lookup := scrape.NewPopularityLookup(
		fetcher,
		cfg.LookupURLTemplate,
		scrape.WithHitsExtractor(scrape.NewMarkerAnchorExtractor(cfg.HitsMarker)),
		scrape.WithLookupLogger(logger),
	)

	aggregator := pipeline.NewAggregator(
		lookup,
		pipeline.NewWorkerPool(cfg.Concurrency),
		pipeline.WithAggregatorLogger(logger),
		pipeline.WithProgress(func(record model.Record, done, total int) {
			logger.Debug("lookup finished",
				"name", record.Name,
				"hits", record.Hits,
				"status", record.Status,
				"done", done,
				"total", total,
			)
		}),
	)

	records := aggregator.Aggregate(ctx, names)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("ranking interrupted: %w", err)
	}

	ranking := model.NewRanking(cfg.SourceURL, records, cfg.TopN)
	if _, err := newReportWriter(cfg, out).Write(ranking); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
