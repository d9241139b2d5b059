package taskengine

import (
	"time"

	"github.com/corework/taskengine/core"
)

// Re-exported from core, for callers who only want to import the top-level
// package.

// Task is the unit of scheduling.
type Task = core.Task

// Body is the work a Task performs.
type Body = core.Body

// Future is a Task specialization producing a typed result.
type Future[T any] = core.Future[T]

// Executor owns the worker pool and ready-queue.
type Executor = core.Executor

// ExecutorConfig configures an Executor's ambient stack and ready-queue.
type ExecutorConfig = core.ExecutorConfig

// ExecutorStats is a point-in-time executor activity snapshot.
type ExecutorStats = core.ExecutorStats

// Logger, Field, Metrics, and PanicHandler are the ambient stack interfaces.
type (
	Logger       = core.Logger
	Field        = core.Field
	Metrics      = core.Metrics
	PanicHandler = core.PanicHandler
)

// Queue is the ready-queue abstraction an ExecutorConfig.QueueFactory builds.
type Queue = core.Queue

// Errors returned by Future.Get and the combinators.
var (
	ErrTaskCanceled      = core.ErrTaskCanceled
	ErrNoFinishedElement = core.ErrNoFinishedElement
)

var (
	NewTask                          = core.NewTask
	MakeThreadPoolExecutor           = core.MakeThreadPoolExecutor
	MakeThreadPoolExecutorWithConfig = core.MakeThreadPoolExecutorWithConfig
	DefaultExecutorConfig            = core.DefaultExecutorConfig
	DetectCycle                      = core.DetectCycle
	F                                = core.F
	NewDefaultLogger                 = core.NewDefaultLogger
	NewNoOpLogger                    = core.NewNoOpLogger
	Chain                            = core.Chain
)

// Invoke, Then, WhenAll, WhenFirst, and WhenAllBeforeDeadline are the
// generic part of the combinator layer; they are re-exported as functions
// rather than the var-of-func-value form above since they carry type
// parameters. Chain, which has none, is re-exported in the var block.

// Invoke submits fn as a Future with no readiness constraints.
func Invoke[T any](e *Executor, fn func() (T, error)) *Future[T] {
	return core.Invoke(e, fn)
}

// Then submits fn as a Future depending on input.
func Then[T, Y any](e *Executor, input *Future[T], fn func() (Y, error)) *Future[Y] {
	return core.Then(e, input, fn)
}

// WhenAll submits a Future collecting every element of all.
func WhenAll[T any](e *Executor, all []*Future[T]) *Future[[]T] {
	return core.WhenAll(e, all)
}

// WhenFirst submits a Future triggered by the first finished element of all.
func WhenFirst[T any](e *Executor, all []*Future[T]) *Future[T] {
	return core.WhenFirst(e, all)
}

// WhenAllBeforeDeadline submits a Future collecting whichever elements of all
// have finished successfully by deadline.
func WhenAllBeforeDeadline[T any](e *Executor, all []*Future[T], deadline time.Time) *Future[[]T] {
	return core.WhenAllBeforeDeadline(e, all, deadline)
}
