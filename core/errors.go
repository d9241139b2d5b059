package core

import (
	"errors"
	"fmt"
)

// ErrNoFinishedElement is returned by WhenFirst's thunk when none of its
// triggers ever reached Completed or Failed — e.g. every element in the
// vector was Canceled. The original design leaves this case undefined;
// this implementation treats it as a combinator-level failure.
var ErrNoFinishedElement = errors.New("taskengine: WhenFirst found no finished element")

// ErrShuttingDown describes a Submit rejected because the executor is
// shutting down. Submit does not return it: the rejected task is canceled
// and Metrics.RecordTaskRejected receives the reason "shutting down".
var ErrShuttingDown = errors.New("taskengine: executor is shutting down")

// panicError adapts a recovered panic value into an error so a task body
// that panics fails the task exactly like one that returns an error.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("taskengine: task panicked: %w", err)
	}
	return fmt.Errorf("taskengine: task panicked: %v", r)
}
