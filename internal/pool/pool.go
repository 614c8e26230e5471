// Package pool provides the bounded worker group the rendering and feature
// extraction phases fan out on. The first task error cancels the group:
// in-flight tasks finish with their results ignored, queued tasks are
// skipped, and Wait reports that first error.
package pool

import (
	"context"
	"sync"
)

// Task is one unit of phase work.
type Task func(ctx context.Context) error

// Group owns a fixed set of workers draining a task channel. Submit after
// Wait is a programming error.
type Group struct {
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	tasks    chan Task
	wg       sync.WaitGroup
	once     sync.Once
	firstErr error
}

// NewGroup starts workers goroutines consuming submitted tasks. A worker
// count below one is treated as one.
func NewGroup(ctx context.Context, workers int) *Group {
	if workers < 1 {
		workers = 1
	}
	groupCtx, cancel := context.WithCancel(ctx)
	g := &Group{
		parent: ctx,
		ctx:    groupCtx,
		cancel: cancel,
		tasks:  make(chan Task),
	}
	g.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go g.worker()
	}
	return g
}

// Submit queues one task. It blocks until a worker picks the task up, which
// bounds the producer to the pool's pace.
func (g *Group) Submit(task Task) {
	g.tasks <- task
}

// Wait closes the queue, waits for the workers to drain it, and returns the
// first task error, or the parent context error if the run was interrupted.
func (g *Group) Wait() error {
	close(g.tasks)
	g.wg.Wait()
	g.cancel()
	if g.firstErr != nil {
		return g.firstErr
	}
	return g.parent.Err()
}

func (g *Group) worker() {
	defer g.wg.Done()
	for task := range g.tasks {
		if g.ctx.Err() != nil {
			continue
		}
		if err := task(g.ctx); err != nil {
			g.record(err)
		}
	}
}

func (g *Group) record(err error) {
	g.once.Do(func() {
		g.firstErr = err
		g.cancel()
	})
}
