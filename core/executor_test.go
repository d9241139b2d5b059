package core

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestExecutor_RunsSubmittedTask(t *testing.T) {
	executor := MakeThreadPoolExecutor(2)
	defer executor.Close()

	var ran atomic.Bool
	task := NewTask(func() error {
		ran.Store(true)
		return nil
	})
	executor.Submit(task)
	task.Wait()

	if !ran.Load() {
		t.Fatal("submitted task never ran")
	}
	if !task.IsCompleted() {
		t.Fatal("task should be Completed")
	}
}

func TestExecutor_FailedBodyMarksTaskFailed(t *testing.T) {
	executor := MakeThreadPoolExecutor(1)
	defer executor.Close()

	boom := errors.New("boom")
	task := NewTask(func() error { return boom })
	executor.Submit(task)
	task.Wait()

	if !task.IsFailed() {
		t.Fatal("task should be Failed")
	}
	if !errors.Is(task.GetError(), boom) {
		t.Fatalf("GetError() = %v, want %v", task.GetError(), boom)
	}
}

func TestExecutor_PanicIsRecoveredAsFailure(t *testing.T) {
	executor := MakeThreadPoolExecutor(1)
	defer executor.Close()

	task := NewTask(func() error { panic("kaboom") })
	executor.Submit(task)
	task.Wait()

	if !task.IsFailed() {
		t.Fatal("a panicking body should fail the task, not crash the worker")
	}
	if task.GetError() == nil {
		t.Fatal("expected a non-nil error describing the panic")
	}
}

func TestExecutor_WaitsOnDependency(t *testing.T) {
	executor := MakeThreadPoolExecutor(1)
	defer executor.Close()

	var order []int
	first := NewTask(func() error {
		order = append(order, 1)
		return nil
	})
	second := NewTask(func() error {
		order = append(order, 2)
		return nil
	})
	second.AddDependency(first)

	executor.Submit(second)
	executor.Submit(first)
	second.Wait()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order = %v, want [1 2]", order)
	}
}

func TestExecutor_SubmitAfterShutdownCancels(t *testing.T) {
	executor := MakeThreadPoolExecutor(1)
	executor.Close()

	task := NewTask(func() error { return nil })
	executor.Submit(task)

	if !task.IsCanceled() {
		t.Fatal("Submit after shutdown should cancel the task immediately")
	}
}

func TestExecutor_ShutdownCancelsNotYetReadyTasks(t *testing.T) {
	executor := MakeThreadPoolExecutor(1)

	dep := NewTask(func() error {
		time.Sleep(20 * time.Millisecond)
		return nil
	})
	waiting := NewTask(func() error { return nil })
	waiting.AddDependency(dep)

	executor.Submit(waiting)

	// dep is never submitted, so waiting can never become ready during the
	// drain; it must be canceled rather than block shutdown forever.
	executor.Close()

	if !waiting.IsCanceled() && !waiting.IsFinished() {
		t.Fatal("a task that never became ready should resolve during shutdown")
	}
}

func TestExecutor_Stats(t *testing.T) {
	executor := MakeThreadPoolExecutor(3)
	defer executor.Close()

	stats := executor.Stats()
	if stats.Workers != 3 {
		t.Fatalf("Workers = %d, want 3", stats.Workers)
	}
	if stats.Closed {
		t.Fatal("a fresh executor should not report Closed")
	}
}

func TestExecutor_History(t *testing.T) {
	executor := MakeThreadPoolExecutor(1)
	defer executor.Close()

	task := NewTask(func() error { return nil })
	executor.Submit(task)
	task.Wait()

	time.Sleep(10 * time.Millisecond) // history.add happens just after complete()

	records := executor.History(10)
	if len(records) == 0 {
		t.Fatal("expected at least one execution record")
	}
	if records[0].TaskID != task.ID() {
		t.Fatalf("records[0].TaskID = %v, want %v", records[0].TaskID, task.ID())
	}
}
