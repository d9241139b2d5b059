// Package core implements the scheduler, task lifecycle, and combinator
// layer described by the task engine: a fixed worker pool that dispatches
// Tasks once their dependencies, triggers, and time-trigger are satisfied.
package core

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrTaskCanceled is returned by Future.Get when the underlying task was
// canceled before it ran.
var ErrTaskCanceled = errors.New("taskengine: task canceled")

// status is the internal lifecycle state of a Task. Running is never
// observable through the public Is* predicates; it only exists to make the
// claim (Pending -> Running) atomic with Cancel.
type status int32

const (
	statusPending status = iota
	statusRunning
	statusCompleted
	statusFailed
	statusCanceled
)

// Body is the work a Task performs. A non-nil returned error fails the task;
// a panic inside Body is recovered by the executor and also fails the task.
type Body func() error

// Task is the unit of scheduling: a lifecycle state machine guarded by a
// mutex, plus the readiness inputs (dependencies, triggers, time-trigger)
// the executor consults before dispatching it to a worker.
type Task struct {
	id uuid.UUID

	mu     sync.Mutex
	status status
	err    error
	done   chan struct{}

	deps     []*Task
	triggers []*Task
	deadline time.Time

	body Body
}

// NewTask creates a Task whose body is the given closure. The task is not
// scheduled until it is passed to an Executor's Submit.
func NewTask(body Body) *Task {
	return &Task{
		id:       uuid.New(),
		status:   statusPending,
		done:     make(chan struct{}),
		deadline: time.Now(),
		body:     body,
	}
}

// ID returns the task's generated identifier, stable for its lifetime. It
// carries no scheduling semantics; it exists for logs, metrics, and
// execution-history correlation.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// AddDependency registers dep as a prerequisite: t cannot run until dep
// IsFinished. Must be called before the task is submitted.
func (t *Task) AddDependency(dep *Task) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deps = append(t.deps, dep)
}

// AddTrigger registers dep as an awakening task: t becomes trigger-ready as
// soon as any one of its triggers IsFinished. Must be called before the task
// is submitted.
func (t *Task) AddTrigger(dep *Task) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.triggers = append(t.triggers, dep)
}

// SetTimeTrigger sets the wall-clock instant before which t cannot run. Must
// be called before the task is submitted.
func (t *Task) SetTimeTrigger(at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deadline = at
}

// snapshot returns the readiness inputs (dependencies, triggers, deadline), so
// canBeExecuted need not hold t's mutex while it calls into other tasks.
func (t *Task) snapshot() (deps, triggers []*Task, deadline time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deps, t.triggers, t.deadline
}

// canBeExecuted reports whether t's dependencies are all finished, its
// time-trigger has arrived, and (it has no triggers, or one has finished).
// Evaluation short-circuits in that fixed order.
func (t *Task) canBeExecuted() bool {
	deps, triggers, deadline := t.snapshot()

	for _, d := range deps {
		if !d.IsFinished() {
			return false
		}
	}

	if time.Now().Before(deadline) {
		return false
	}

	if len(triggers) == 0 {
		return true
	}
	for _, tr := range triggers {
		if tr.IsFinished() {
			return true
		}
	}
	return false
}

// taskDeadline returns t's current time-trigger, used by deadlineQueue to
// order tasks without reaching into Task's private fields directly.
func taskDeadline(t *Task) time.Time {
	_, _, deadline := t.snapshot()
	return deadline
}

// tryClaim atomically transitions Pending -> Running. It fails (returns
// false) if the task is no longer Pending, e.g. because Cancel won the race.
func (t *Task) tryClaim() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != statusPending {
		return false
	}
	t.status = statusRunning
	return true
}

// complete transitions a claimed (Running) task to Completed and releases
// waiters. Only the executor calls this, after a successful tryClaim.
func (t *Task) complete() {
	t.mu.Lock()
	t.status = statusCompleted
	close(t.done)
	t.mu.Unlock()
}

// fail transitions a claimed (Running) task to Failed, storing err, and
// releases waiters. Only the executor calls this, after a successful
// tryClaim.
func (t *Task) fail(err error) {
	t.mu.Lock()
	t.err = err
	t.status = statusFailed
	close(t.done)
	t.mu.Unlock()
}

// Cancel transitions a Pending task to Canceled and releases waiters. If the
// task has already been claimed for execution, Cancel has no effect:
// cancellation is cooperative only at the pre-claim boundary.
func (t *Task) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status == statusPending {
		t.status = statusCanceled
		close(t.done)
	}
}

// Wait blocks until the task reaches a terminal status.
func (t *Task) Wait() {
	<-t.done
}

// IsCompleted reports whether the task's body returned without error.
func (t *Task) IsCompleted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status == statusCompleted
}

// IsFailed reports whether the task's body returned an error or panicked.
func (t *Task) IsFailed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status == statusFailed
}

// IsCanceled reports whether the task was canceled before it ran.
func (t *Task) IsCanceled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status == statusCanceled
}

// IsFinished reports whether the task has reached any terminal status.
// Running (claimed-but-not-yet-terminal) is not finished.
func (t *Task) IsFinished() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status == statusCompleted || t.status == statusFailed || t.status == statusCanceled
}

// GetError returns the error captured when the task failed, or nil.
func (t *Task) GetError() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// run invokes the task's body. Called by the executor only after a
// successful tryClaim; panic recovery is the executor's responsibility
// (runWithPanicReport) so it can also report to the PanicHandler/Metrics.
func (t *Task) run() error {
	if t.body == nil {
		return nil
	}
	return t.body()
}
