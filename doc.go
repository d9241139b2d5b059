// Package taskengine provides a task execution engine with combinators over
// deferred values: a fixed pool of worker goroutines dispatches Tasks once
// their dependencies, awakening triggers, and time-trigger are satisfied,
// and a small combinator layer (Invoke, Then, WhenAll, WhenFirst,
// WhenAllBeforeDeadline, Chain) composes Futures on top of that scheduler.
//
// # Quick Start
//
//	executor := taskengine.MakeThreadPoolExecutor(4)
//	defer executor.Close()
//
//	future := taskengine.Invoke(executor, func() (int, error) {
//		return 42, nil
//	})
//	value, err := future.Get()
//
// # Key Concepts
//
// Task: the lifecycle-bearing unit of scheduling. Status moves Pending ->
// {Completed, Failed, Canceled} exactly once; dependencies and triggers
// configure when it becomes eligible to run.
//
// Future[T]: a Task whose body produces a typed result, retrieved with Get.
//
// Executor: owns the worker pool and the ready-queue; Submit enqueues a
// task, the combinators build and submit Futures for you.
//
// # Thread Safety
//
// Every exported type is safe for concurrent use. A Task's dependencies,
// triggers, and time-trigger must be configured before it is submitted —
// mutating them afterward is not a supported operation.
//
// # Observability
//
// Pass an ExecutorConfig (via MakeThreadPoolExecutorWithConfig) to supply a
// Logger, a Metrics sink, and a PanicHandler; see the observability/
// prometheus subpackage for a ready-made Prometheus adapter.
package taskengine
