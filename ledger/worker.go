package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	errQueueFull    = errors.New("usage ledger queue full")
	errWorkerClosed = errors.New("usage ledger worker closed")
)

//go:generate moq -rm -pkg ledger_test -out moq_recorder_test.go . Recorder

// Recorder is the accounting operation the worker executes off the
// request path.
type Recorder interface {
	Record(ctx context.Context, userID, datasetID, versionID string) error
}

const (
	// DefaultQueueSize bounds the number of accesses waiting to be
	// accounted. A full queue drops the task rather than blocking a
	// response that has already been computed.
	DefaultQueueSize = 1024

	// DefaultWorkers is how many accounting tasks run concurrently.
	DefaultWorkers = 4

	// taskTimeout bounds a single accounting attempt once the store has
	// stopped responding.
	taskTimeout = 30 * time.Second
)

type task struct {
	id        string
	userID    string
	datasetID string
	versionID string
}

// Worker runs accounting detached from the request path: Submit never
// blocks and never reports failure to the submitting handler. Failures
// are logged with the task id for operator visibility, and Close drains
// whatever has been accepted before shutdown.
type Worker struct {
	recorder Recorder
	tasks    chan task
	group    *errgroup.Group

	// mu guards closed so a Submit racing Close drops the task instead
	// of sending on a closed channel.
	mu     sync.Mutex
	closed bool

	// OnFailure, when set, observes every failed or dropped task in
	// addition to the log entry. Used by tests.
	OnFailure func(err error)
}

// NewWorker returns an unstarted Worker. Sizes below 1 fall back to the
// package defaults.
func NewWorker(recorder Recorder, queueSize int) *Worker {
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}
	return &Worker{
		recorder: recorder,
		tasks:    make(chan task, queueSize),
	}
}

// Start launches n accounting workers. Tasks deliberately run on a
// context detached from any request: cancelling a served request must not
// cancel its accounting.
func (w *Worker) Start(ctx context.Context, n int) {
	if n < 1 {
		n = DefaultWorkers
	}

	w.group = &errgroup.Group{}
	for i := 0; i < n; i++ {
		w.group.Go(func() error {
			for t := range w.tasks {
				w.run(t)
			}
			return nil
		})
	}

	log.Info(ctx, "usage ledger worker started", log.Data{
		"workers":    n,
		"queue_size": cap(w.tasks),
	})
}

// Submit queues the accounting of one resolved access. It returns false
// when the queue is saturated or the worker has been closed and the task
// was dropped; the access itself is still considered successful.
func (w *Worker) Submit(userID, datasetID, versionID string) bool {
	t := task{
		id:        uuid.NewString(),
		userID:    userID,
		datasetID: datasetID,
		versionID: versionID,
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		log.Warn(context.Background(), "usage ledger worker closed, dropping accounting task", log.Data{
			"task_id":    t.id,
			"dataset_id": t.datasetID,
			"version_id": t.versionID,
		})
		w.report(errWorkerClosed)
		return false
	}

	select {
	case w.tasks <- t:
		w.mu.Unlock()
		return true
	default:
		w.mu.Unlock()
		log.Warn(context.Background(), "usage ledger queue full, dropping accounting task", log.Data{
			"task_id":    t.id,
			"dataset_id": t.datasetID,
			"version_id": t.versionID,
		})
		w.report(errQueueFull)
		return false
	}
}

// Close stops accepting tasks and waits for the queue to drain, bounded
// by ctx. Submissions after Close are dropped, never a panic.
func (w *Worker) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.tasks)
	}
	w.mu.Unlock()

	if w.group == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		_ = w.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) run(t task) {
	ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
	defer cancel()

	if err := w.recorder.Record(ctx, t.userID, t.datasetID, t.versionID); err != nil {
		log.Error(ctx, "usage ledger accounting failed", err, log.Data{
			"task_id":    t.id,
			"user_id":    t.userID,
			"dataset_id": t.datasetID,
			"version_id": t.versionID,
		})
		w.report(err)
	}
}

func (w *Worker) report(err error) {
	if w.OnFailure != nil {
		w.OnFailure(err)
	}
}
