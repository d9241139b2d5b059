package core

import (
	"fmt"
	"time"
)

// Metrics is the observability sink the executor reports into. All methods
// must be non-blocking and safe for concurrent use; implementations adapt
// these calls to a monitoring backend (see observability/prometheus for a
// Prometheus adapter).
type Metrics interface {
	// RecordTaskDuration reports how long a task's body took to run.
	RecordTaskDuration(duration time.Duration)

	// RecordTaskPanic reports that a task's body panicked.
	RecordTaskPanic(panicInfo any)

	// RecordQueueDepth reports the current ready-queue depth.
	RecordQueueDepth(depth int)

	// RecordTaskRejected reports that Submit rejected a task.
	RecordTaskRejected(reason string)
}

// NilMetrics is a no-op Metrics implementation; it is the executor's
// default.
type NilMetrics struct{}

func (NilMetrics) RecordTaskDuration(time.Duration) {}
func (NilMetrics) RecordTaskPanic(any)              {}
func (NilMetrics) RecordQueueDepth(int)             {}
func (NilMetrics) RecordTaskRejected(string)        {}

// PanicHandler is invoked when a task's body panics, in addition to the
// panic being converted into the task's error slot. This is the hook
// operators use to page on or log panics with full stack context.
type PanicHandler interface {
	HandlePanic(workerID int, panicInfo any, stackTrace []byte)
}

// DefaultPanicHandler prints panic details to stdout.
type DefaultPanicHandler struct{}

func (DefaultPanicHandler) HandlePanic(workerID int, panicInfo any, stackTrace []byte) {
	fmt.Printf("[worker %d] panic: %v\n%s\n", workerID, panicInfo, stackTrace)
}

// NoOpPanicHandler discards panic notifications (the task still fails; this
// only suppresses the side-channel report).
type NoOpPanicHandler struct{}

func (NoOpPanicHandler) HandlePanic(workerID int, panicInfo any, stackTrace []byte) {}
