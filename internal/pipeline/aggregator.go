package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nao1215/mathrank/internal/model"
)

// Looker returns the popularity record for a single name.
// Implementations must not fail: problems are reported as degraded records.
type Looker interface {
	Lookup(ctx context.Context, name string) model.Record
}

// LookerFunc adapts an ordinary function to the Looker interface.
type LookerFunc func(ctx context.Context, name string) model.Record

// Lookup calls f(ctx, name).
func (f LookerFunc) Lookup(ctx context.Context, name string) model.Record {
	return f(ctx, name)
}

// ProgressFunc is called once per finished lookup with the number of
// lookups finished so far and the total. Calls are serialised.
type ProgressFunc func(record model.Record, done, total int)

// Aggregator fans a list of names out to a Looker on a WorkerPool and
// collects one record per name.
//
// Each task writes its record into its own slot of a pre-sized slice. The
// join happens in WorkerPool.Wait.
type Aggregator struct {
	// lookup fetches one record.
	lookup Looker

	// pool bounds the number of lookups in flight.
	pool *WorkerPool

	// logger is used for batch-level logging.
	logger *slog.Logger

	// progress is an optional per-record callback.
	progress ProgressFunc

	// mu serialises progress callbacks.
	mu sync.Mutex
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithAggregatorLogger sets a custom logger for batch-level logging.
func WithAggregatorLogger(logger *slog.Logger) AggregatorOption {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// WithProgress registers a callback invoked after every finished lookup.
func WithProgress(fn ProgressFunc) AggregatorOption {
	return func(a *Aggregator) {
		a.progress = fn
	}
}

// NewAggregator creates an Aggregator running lookup on pool.
// A nil pool is replaced by NewWorkerPool(DefaultPoolSize).
func NewAggregator(lookup Looker, pool *WorkerPool, opts ...AggregatorOption) *Aggregator {
	if pool == nil {
		pool = NewWorkerPool(DefaultPoolSize)
	}

	a := &Aggregator{
		lookup: lookup,
		pool:   pool,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// Aggregate looks up every name concurrently and returns exactly one record
// per name once all lookups have finished. records[i] belongs to names[i].
//
// A failed lookup never stops the batch; it is already a zero-count record.
// No lookup is cancelled or timed out by the aggregator itself; ctx is
// passed through to the Looker unchanged.
func (a *Aggregator) Aggregate(ctx context.Context, names []string) []model.Record {
	a.logger.Info("looking up popularity",
		"names", len(names),
		"concurrency", a.pool.Size(),
	)

	startTime := time.Now()
	records := make([]model.Record, len(names))
	done := 0

	for i, name := range names {
		a.pool.Go(func() {
			records[i] = a.lookup.Lookup(ctx, name)

			if a.progress != nil {
				a.mu.Lock()
				done++
				a.progress(records[i], done, len(names))
				a.mu.Unlock()
			}
		})
	}

	a.pool.Wait()

	a.logger.Info("lookups complete",
		"names", len(names),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	return records
}
