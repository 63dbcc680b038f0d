package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nao1215/mathrank/internal/model"
)

// quietLogger returns a logger that writes into an unread buffer.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// names returns n distinct names.
func names(n int) []string {
	out := make([]string, n)
	for i := range n {
		out[i] = fmt.Sprintf("name-%03d", i)
	}
	return out
}

func TestNewAggregator(t *testing.T) {
	t.Parallel()

	t.Run("nil pool selects default size", func(t *testing.T) {
		t.Parallel()

		a := NewAggregator(LookerFunc(func(_ context.Context, name string) model.Record {
			return model.NewRecord(name, 0)
		}), nil)

		if a.pool.Size() != DefaultPoolSize {
			t.Errorf("expected pool size %d, got %d", DefaultPoolSize, a.pool.Size())
		}
		if a.logger == nil {
			t.Error("expected non-nil logger")
		}
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		t.Parallel()

		a := NewAggregator(nil, NewWorkerPool(1), WithAggregatorLogger(nil))
		if a.logger == nil {
			t.Error("expected non-nil logger")
		}
	})
}

func TestAggregatorAggregate(t *testing.T) {
	t.Parallel()

	t.Run("returns exactly one record per name", func(t *testing.T) {
		t.Parallel()

		input := names(100)
		lookup := LookerFunc(func(_ context.Context, name string) model.Record {
			return model.NewRecord(name, len(name))
		})

		records := NewAggregator(lookup, NewWorkerPool(25), WithAggregatorLogger(quietLogger())).
			Aggregate(context.Background(), input)

		if len(records) != len(input) {
			t.Fatalf("expected %d records, got %d", len(input), len(records))
		}

		got := make([]string, len(records))
		for i, r := range records {
			got[i] = r.Name
		}
		sort.Strings(got)
		for i := range input {
			if got[i] != input[i] {
				t.Fatalf("record names differ from input at %d: %q vs %q", i, got[i], input[i])
			}
		}
	})

	t.Run("degraded lookups are kept", func(t *testing.T) {
		t.Parallel()

		input := names(30)
		lookup := LookerFunc(func(_ context.Context, name string) model.Record {
			if name[len(name)-1]%2 == 0 {
				return model.NewDegradedRecord(name, model.StatusFetchFailed, "offline")
			}
			return model.NewRecord(name, 10)
		})

		records := NewAggregator(lookup, NewWorkerPool(5), WithAggregatorLogger(quietLogger())).
			Aggregate(context.Background(), input)

		if len(records) != 30 {
			t.Fatalf("expected 30 records, got %d", len(records))
		}

		degraded := 0
		for _, r := range records {
			if r.Degraded() {
				degraded++
				if r.Hits != 0 {
					t.Errorf("degraded record %q has %d hits", r.Name, r.Hits)
				}
			}
		}
		if degraded != 15 {
			t.Errorf("expected 15 degraded records, got %d", degraded)
		}
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var current, peak atomic.Int32
		lookup := LookerFunc(func(_ context.Context, name string) model.Record {
			n := current.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			current.Add(-1)
			return model.NewRecord(name, 1)
		})

		NewAggregator(lookup, NewWorkerPool(3), WithAggregatorLogger(quietLogger())).
			Aggregate(context.Background(), names(20))

		if peak.Load() > 3 {
			t.Errorf("expected at most 3 concurrent lookups, got %d", peak.Load())
		}
	})

	t.Run("waits for slow lookups", func(t *testing.T) {
		t.Parallel()

		var finished atomic.Int32
		lookup := LookerFunc(func(_ context.Context, name string) model.Record {
			time.Sleep(20 * time.Millisecond)
			finished.Add(1)
			return model.NewRecord(name, 1)
		})

		NewAggregator(lookup, NewWorkerPool(2), WithAggregatorLogger(quietLogger())).
			Aggregate(context.Background(), names(6))

		if finished.Load() != 6 {
			t.Errorf("expected all 6 lookups finished before return, got %d", finished.Load())
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		lookup := LookerFunc(func(_ context.Context, name string) model.Record {
			t.Errorf("unexpected lookup of %q", name)
			return model.Record{}
		})

		records := NewAggregator(lookup, NewWorkerPool(2), WithAggregatorLogger(quietLogger())).
			Aggregate(context.Background(), nil)

		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
	})

	t.Run("passes context through", func(t *testing.T) {
		t.Parallel()

		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "marker")

		lookup := LookerFunc(func(ctx context.Context, name string) model.Record {
			if ctx.Value(key{}) != "marker" {
				t.Errorf("context not passed through for %q", name)
			}
			return model.NewRecord(name, 1)
		})

		NewAggregator(lookup, NewWorkerPool(2), WithAggregatorLogger(quietLogger())).
			Aggregate(ctx, names(3))
	})

	t.Run("progress is reported once per lookup", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		seen := make(map[string]int)
		doneValues := make([]int, 0)

		lookup := LookerFunc(func(_ context.Context, name string) model.Record {
			return model.NewRecord(name, 1)
		})

		progress := func(record model.Record, done, total int) {
			mu.Lock()
			defer mu.Unlock()
			seen[record.Name]++
			doneValues = append(doneValues, done)
			if total != 12 {
				t.Errorf("expected total 12, got %d", total)
			}
		}

		NewAggregator(lookup, NewWorkerPool(4),
			WithAggregatorLogger(quietLogger()),
			WithProgress(progress),
		).Aggregate(context.Background(), names(12))

		if len(seen) != 12 {
			t.Errorf("expected progress for 12 names, got %d", len(seen))
		}
		for name, n := range seen {
			if n != 1 {
				t.Errorf("expected one progress call for %q, got %d", name, n)
			}
		}
		sort.Ints(doneValues)
		for i, d := range doneValues {
			if d != i+1 {
				t.Errorf("expected done counts 1..12, got %v", doneValues)
				break
			}
		}
	})
}

func TestAggregatorKeepsInputPositions(t *testing.T) {
	t.Parallel()

	input := names(40)
	a := NewAggregator(LookerFunc(func(_ context.Context, name string) model.Record {
		// Finish later names first to shuffle completion order.
		var i int
		fmt.Sscanf(name, "name-%03d", &i)
		time.Sleep(time.Duration(40-i) * time.Millisecond / 4)
		return model.NewRecord(name, i)
	}), NewWorkerPool(40), WithAggregatorLogger(quietLogger()))

	records := a.Aggregate(context.Background(), input)

	for i, r := range records {
		if r.Name != input[i] {
			t.Errorf("records[%d].Name = %q, want %q", i, r.Name, input[i])
		}
	}
}
