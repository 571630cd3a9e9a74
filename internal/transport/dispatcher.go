// Package transport holds what every chat transport shares: the per-user
// dispatcher that serializes inputs of one user while different users run
// in parallel.
package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Job handles one input. ctx is the dispatcher's context.
type Job func(ctx context.Context)

// Dispatcher runs jobs in arrival order per user. Each user with queued jobs
// has exactly one worker goroutine; it exits when the user's queue drains.
type Dispatcher struct {
	ctx    context.Context
	logger *slog.Logger

	mu     sync.Mutex
	queues map[int64][]Job
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher returns a Dispatcher whose jobs receive ctx.
func NewDispatcher(ctx context.Context, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{
		ctx:    ctx,
		logger: logger,
		queues: make(map[int64][]Job),
	}
}

// Submit queues job for userID. It reports false once Close was called.
func (d *Dispatcher) Submit(userID int64, job Job) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	q, running := d.queues[userID]
	d.queues[userID] = append(q, job)
	if !running {
		d.wg.Add(1)
		go d.work(userID)
	}
	return true
}

// Pending returns how many users currently have a worker.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queues)
}

// Close stops accepting jobs and waits for queued ones to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.wg.Wait()
}

// Wait blocks until every queued job has run.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) work(userID int64) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		q := d.queues[userID]
		if len(q) == 0 {
			delete(d.queues, userID)
			d.mu.Unlock()
			return
		}
		job := q[0]
		q[0] = nil
		d.queues[userID] = q[1:]
		d.mu.Unlock()

		d.run(userID, job)
	}
}

func (d *Dispatcher) run(userID int64, job Job) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(d.ctx, "dispatch_job_panic", "user_id", userID, "panic", fmt.Sprint(r))
		}
	}()
	job(d.ctx)
}
