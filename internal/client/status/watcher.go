package status

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/docproc/internal/client/models"
	"github.com/dmitrijs2005/docproc/internal/logging"
)

const (
	DefaultInterval = 2 * time.Second

	// How many polls in a row may fail on transport before the watch loop
	// reports ErrGaveUp instead of silently spinning forever.
	defaultMaxFailures = 5
)

// ErrGaveUp reports that polling was abandoned after repeated transport
// failures. It is deliberately distinct from a task reaching status
// "failed", which is normal data, not a synchronization error.
var ErrGaveUp = errors.New("status synchronization gave up")

// TaskFetcher is the single transport call the watcher needs; *api.Client
// satisfies it.
type TaskFetcher interface {
	GetTask(ctx context.Context, taskID string) (*models.Task, error)
}

// Watcher tracks tasks (and file fragments) by id, advancing them via
// polling and push reconciliation. Safe for concurrent use; watches for
// different tasks are independent.
type Watcher struct {
	fetcher     TaskFetcher
	interval    time.Duration
	maxFailures int
	logger      logging.Logger

	mu      sync.Mutex
	tasks   map[string]models.Task
	files   map[string]models.File
	cancels map[string]context.CancelFunc
}

func NewWatcher(fetcher TaskFetcher, interval time.Duration, logger logging.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Watcher{
		fetcher:     fetcher,
		interval:    interval,
		maxFailures: defaultMaxFailures,
		logger:      logger,
		tasks:       make(map[string]models.Task),
		files:       make(map[string]models.File),
		cancels:     make(map[string]context.CancelFunc),
	}
}

// Watch polls the task until its status turns terminal, then returns the
// final record. onUpdate (optional) fires after every applied update, in
// receipt order.
//
// Outcomes:
//   - terminal status observed (by a poll or a push fragment): task, nil.
//     A failed task is a successful watch; the failure is in the record.
//   - caller cancellation: nil, ctx.Err(); a poll resolving after the
//     cancellation is discarded, not applied.
//   - maxFailures consecutive transport errors: nil, ErrGaveUp.
//   - a validation rejection (unknown task id): nil, the error as-is.
func (w *Watcher) Watch(ctx context.Context, taskID string, onUpdate func(models.Task)) (*models.Task, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	w.register(taskID, cancel)
	defer w.unregister(taskID)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	failures := 0
	for {
		task, err := w.fetcher.GetTask(ctx, taskID)

		// A resolution arriving after cancellation is discarded. If a push
		// fragment already drove the task terminal, the watch still counts
		// as finished.
		if ctx.Err() != nil {
			if stored, ok := w.Task(taskID); ok && stored.Status.Terminal() {
				return &stored, nil
			}
			return nil, ctx.Err()
		}

		switch {
		case err == nil:
			failures = 0
			w.store(*task)
			if onUpdate != nil {
				onUpdate(*task)
			}
			if task.Status.Terminal() {
				w.logger.Debug(ctx, "watch finished", "task_id", taskID, "status", task.Status)
				return task, nil
			}
		case errors.Is(err, context.Canceled):
			// handled above on the next ctx.Err() check
		default:
			if !retryable(err) {
				return nil, err
			}
			failures++
			w.logger.Warn(ctx, "poll failed", "task_id", taskID, "attempt", failures, "error", err)
			if failures >= w.maxFailures {
				return nil, fmt.Errorf("%w after %d attempts: %v", ErrGaveUp, failures, err)
			}
		}

		select {
		case <-ctx.Done():
			if stored, ok := w.Task(taskID); ok && stored.Status.Terminal() {
				return &stored, nil
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Task returns a copy of the last known record for the id.
func (w *Watcher) Task(taskID string) (models.Task, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	task, ok := w.tasks[taskID]
	return task, ok
}

// File returns a copy of the last known file fragment for the id.
func (w *Watcher) File(fileID string) (models.File, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	file, ok := w.files[fileID]
	return file, ok
}

func (w *Watcher) store(task models.Task) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tasks[task.TaskID] = task
}

func (w *Watcher) register(taskID string, cancel context.CancelFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancels[taskID] = cancel
}

func (w *Watcher) unregister(taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.cancels, taskID)
}
