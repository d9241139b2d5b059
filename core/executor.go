package core

import (
	"runtime"
	"sync"
	"time"
)

// ExecutorStats is a point-in-time snapshot of executor activity, for
// observability (see observability/prometheus).
type ExecutorStats struct {
	Workers int
	Queued  int
	Active  int
	Closed  bool
}

// Executor owns a fixed-size pool of worker goroutines and a ready-queue. It
// evaluates each submitted task's readiness and dispatches it to a worker
// once its dependencies, time-trigger, and triggers are all satisfied.
type Executor struct {
	queue   Queue
	workers int
	wg      sync.WaitGroup

	logger       Logger
	metrics      Metrics
	panicHandler PanicHandler
	history      *executionHistory

	queuedCount int64
	activeCount int64
	countMu     sync.Mutex

	shutdownOnce sync.Once
}

// MakeThreadPoolExecutor spawns numWorkers worker goroutines backed by the
// default FIFO ready-queue and no-op ambient stack.
func MakeThreadPoolExecutor(numWorkers int) *Executor {
	return MakeThreadPoolExecutorWithConfig(numWorkers, DefaultExecutorConfig())
}

// MakeThreadPoolExecutorWithConfig spawns numWorkers worker goroutines with
// the given ambient stack and ready-queue implementation.
func MakeThreadPoolExecutorWithConfig(numWorkers int, cfg ExecutorConfig) *Executor {
	cfg = cfg.withDefaults()

	e := &Executor{
		queue:        cfg.QueueFactory(),
		workers:      numWorkers,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
		panicHandler: cfg.PanicHandler,
		history:      newExecutionHistory(cfg.HistoryCapacity),
	}

	for i := 0; i < numWorkers; i++ {
		e.wg.Add(1)
		go e.workerLoop(i)
	}

	e.logger.Info("executor started", F("workers", numWorkers))
	return e
}

// Submit makes t eligible for the readiness evaluator. If the executor is
// shutting down, t is canceled instead of enqueued.
func (e *Executor) Submit(t *Task) {
	if e.queue.IsClosed() {
		t.Cancel()
		e.metrics.RecordTaskRejected("shutting down")
		return
	}
	if t.IsCanceled() {
		return
	}
	if !e.queue.Put(t) {
		// Lost the race against a concurrent StartShutdown.
		t.Cancel()
		e.metrics.RecordTaskRejected("shutting down")
		return
	}
	e.adjustQueued(1)
}

// StartShutdown closes the ready-queue in drain mode. Idempotent: only the
// first call has effect. Already-enqueued tasks continue draining; workers
// cancel any task that is still not ready once the queue is closed, so the
// drain always terminates.
func (e *Executor) StartShutdown() {
	e.shutdownOnce.Do(func() {
		e.logger.Info("executor shutdown requested")
		e.queue.Close()
	})
}

// WaitShutdown blocks until every worker goroutine has exited. It does not
// itself initiate shutdown; pair it with StartShutdown (or call Close,
// which does both).
func (e *Executor) WaitShutdown() {
	e.wg.Wait()
}

// Close starts shutdown and waits for it to complete, mirroring the
// original design's destructor (Go has no destructors).
func (e *Executor) Close() {
	e.StartShutdown()
	e.WaitShutdown()
}

// Stats returns a point-in-time snapshot of executor activity.
func (e *Executor) Stats() ExecutorStats {
	e.countMu.Lock()
	queued, active := e.queuedCount, e.activeCount
	e.countMu.Unlock()

	return ExecutorStats{
		Workers: e.workers,
		Queued:  int(queued),
		Active:  int(active),
		Closed:  e.queue.IsClosed(),
	}
}

// History returns the most recent executed-task records, most recent first.
func (e *Executor) History(limit int) []ExecutionRecord {
	return e.history.Recent(limit)
}

func (e *Executor) adjustQueued(delta int64) {
	e.countMu.Lock()
	e.queuedCount += delta
	e.countMu.Unlock()
	e.metrics.RecordQueueDepth(int(e.queuedCount))
}

func (e *Executor) adjustActive(delta int64) {
	e.countMu.Lock()
	e.activeCount += delta
	e.countMu.Unlock()
}

// workerLoop is the per-worker dispatch loop described in §4.2: take, skip
// canceled, re-enqueue (or cancel, if draining) not-yet-ready, claim and
// run otherwise ready tasks.
func (e *Executor) workerLoop(id int) {
	defer e.wg.Done()

	for {
		t, ok := e.queue.Take()
		if !ok {
			return
		}
		e.adjustQueued(-1)

		if t.IsCanceled() {
			continue
		}

		if !t.canBeExecuted() {
			if e.queue.IsClosed() {
				// Draining: this task will never become ready before the
				// queue empties. Cancel it instead of looping forever.
				t.Cancel()
				e.logger.Debug("task canceled at shutdown", taskFields(t.ID(), "canceled", 0)...)
				continue
			}
			e.adjustQueued(1)
			e.queue.Put(t)
			continue
		}

		if !t.tryClaim() {
			// Lost the claim race (concurrent Cancel, or a duplicate
			// enqueue from a prior re-enqueue race).
			continue
		}

		e.runClaimed(id, t)
	}
}

func (e *Executor) runClaimed(workerID int, t *Task) {
	e.adjustActive(1)
	defer e.adjustActive(-1)

	start := time.Now()
	err := e.runWithPanicReport(workerID, t)
	duration := time.Since(start)

	e.metrics.RecordTaskDuration(duration)

	status := "completed"
	if err != nil {
		t.fail(err)
		status = "failed"
		e.logger.Warn("task failed", taskFields(t.ID(), status, duration, F("error", err))...)
	} else {
		t.complete()
		e.logger.Debug("task completed", taskFields(t.ID(), status, duration)...)
	}

	e.history.add(ExecutionRecord{
		TaskID:     t.ID(),
		Status:     status,
		StartedAt:  start,
		FinishedAt: start.Add(duration),
		Duration:   duration,
	})
}

func (e *Executor) runWithPanicReport(workerID int, t *Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			e.panicHandler.HandlePanic(workerID, r, buf[:n])
			e.metrics.RecordTaskPanic(r)
			err = panicError(r)
		}
	}()
	return t.run()
}
