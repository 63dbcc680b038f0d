package pipeline

import (
	"golang.org/x/sync/errgroup"
)

// DefaultPoolSize is the number of tasks a WorkerPool runs at once when no
// positive size is given.
const DefaultPoolSize = 25

// WorkerPool runs submitted tasks on goroutines, at most size at a time.
// Tasks cannot fail, so the group's error and context features are unused.
//
// A pool is owned by its caller and passed to whatever fans out work; there
// is no package-level pool. It may be reused once Wait has returned.
type WorkerPool struct {
	group *errgroup.Group
	size  int
}

// NewWorkerPool creates a pool running at most size tasks concurrently.
// A non-positive size selects DefaultPoolSize.
func NewWorkerPool(size int) *WorkerPool {
	if size <= 0 {
		size = DefaultPoolSize
	}

	g := new(errgroup.Group)
	g.SetLimit(size)

	return &WorkerPool{group: g, size: size}
}

// Size returns the maximum number of concurrently running tasks.
func (p *WorkerPool) Size() int {
	return p.size
}

// Go runs task on a new goroutine. It blocks while size tasks are already
// running.
func (p *WorkerPool) Go(task func()) {
	p.group.Go(func() error {
		task()
		return nil
	})
}

// Wait blocks until every submitted task has returned.
func (p *WorkerPool) Wait() {
	_ = p.group.Wait() //nolint:errcheck // Tasks never return an error
}
