package core

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// Go forbids generic methods, so the combinators are free functions
// parameterized by the Executor they submit to rather than methods on
// Executor — the one place this surface must diverge structurally from the
// original Executor.Invoke<T>(...) method form.

// Invoke submits a Future running fn with no readiness constraints.
func Invoke[T any](e *Executor, fn func() (T, error)) *Future[T] {
	fut := newFuture(fn)
	e.Submit(fut.Task)
	return fut
}

// Then submits a Future depending on input: fn runs once input is finished,
// regardless of whether input succeeded, failed, or was canceled. fn is
// responsible for inspecting input (via closure capture) if it cares.
func Then[T, Y any](e *Executor, input *Future[T], fn func() (Y, error)) *Future[Y] {
	fut := newFuture(fn)
	fut.AddDependency(input.Task)
	e.Submit(fut.Task)
	return fut
}

// WhenAll submits a Future depending on every element of all. Once it runs,
// every element is guaranteed finished, so fetching their values never
// blocks the worker; they are still fetched via Get (concurrently, through
// an errgroup) so a failing element's error is recovered by index rather
// than a panic on a zero value. If any element failed, the first such
// failure (by index, not completion order) becomes this Future's error.
func WhenAll[T any](e *Executor, all []*Future[T]) *Future[[]T] {
	fut := newFuture(func() ([]T, error) {
		results := make([]T, len(all))
		errs := make([]error, len(all))

		var g errgroup.Group
		for i, f := range all {
			i, f := i, f
			g.Go(func() error {
				v, err := f.Get()
				results[i] = v
				errs[i] = err
				return nil
			})
		}
		_ = g.Wait()

		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
		return results, nil
	})

	for _, f := range all {
		fut.AddDependency(f.Task)
	}
	e.Submit(fut.Task)
	return fut
}

// WhenFirst submits a Future triggered by any element of all: it runs as
// soon as one element finishes, and returns the Get result of the first
// element (in order) that Completed or Failed; Canceled elements are
// skipped. If it runs and finds no such element — every finished trigger was
// Canceled — it fails with ErrNoFinishedElement, resolving the original
// design's undefined behavior for that case.
func WhenFirst[T any](e *Executor, all []*Future[T]) *Future[T] {
	fut := newFuture(func() (T, error) {
		for _, f := range all {
			if f.IsCompleted() || f.IsFailed() {
				return f.Get()
			}
		}
		var zero T
		return zero, ErrNoFinishedElement
	})

	for _, f := range all {
		fut.AddTrigger(f.Task)
	}
	e.Submit(fut.Task)
	return fut
}

// WhenAllBeforeDeadline submits a Future gated by a time-trigger. Once the
// deadline arrives, it collects the values of whichever elements are
// finished and succeeded; elements that are still pending, or that finished
// with a failure, are silently omitted. It never fails due to an element's
// failure.
func WhenAllBeforeDeadline[T any](e *Executor, all []*Future[T], deadline time.Time) *Future[[]T] {
	fut := newFuture(func() ([]T, error) {
		var out []T
		for _, f := range all {
			if !f.IsFinished() {
				continue
			}
			v, err := f.Get()
			if err == nil {
				out = append(out, v)
			}
		}
		return out, nil
	})

	fut.SetTimeTrigger(deadline)
	e.Submit(fut.Task)
	return fut
}

// Chain is a supplemental combinator (not in the distilled design) modeling
// the teacher's SequencedTaskRunner idea: a fixed sequence of closures
// guaranteed to run in order, each depending on the previous, without the
// caller hand-wiring Then calls one at a time.
func Chain(e *Executor, fns ...func() error) *Future[struct{}] {
	wrap := func(fn func() error) func() (struct{}, error) {
		return func() (struct{}, error) {
			return struct{}{}, fn()
		}
	}

	if len(fns) == 0 {
		return Invoke(e, wrap(func() error { return nil }))
	}

	cur := Invoke(e, wrap(fns[0]))
	for _, fn := range fns[1:] {
		cur = Then(e, cur, wrap(fn))
	}
	return cur
}
