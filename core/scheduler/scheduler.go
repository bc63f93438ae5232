// ABOUTME: Cancellable periodic refresh scheduling for the feed pipelines
// ABOUTME: First run fires immediately; a failed run leaves the timer running

package scheduler

import (
	"context"
	"sync"
	"time"
)

// Task is one scheduled unit of work. Errors are the task's own concern; the
// scheduler keeps firing regardless.
type Task func(ctx context.Context)

// Handle controls one recurring scheduled task.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the recurring task and waits for an in-progress run to return.
// Safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(func() {
		h.cancel()
		<-h.done
	})
}

// Scheduler owns a set of recurring task handles.
type Scheduler struct {
	mu      sync.Mutex
	handles []*Handle
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Every runs task immediately and then on every tick of interval until the
// handle is stopped. The task receives a context cancelled by Stop.
func (s *Scheduler) Every(interval time.Duration, task Task) *Handle {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)

		task(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				task(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()

	s.mu.Lock()
	s.handles = append(s.handles, h)
	s.mu.Unlock()

	return h
}

// StopAll stops every handle created by this scheduler.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	handles := append([]*Handle(nil), s.handles...)
	s.mu.Unlock()

	for _, h := range handles {
		h.Stop()
	}
}
