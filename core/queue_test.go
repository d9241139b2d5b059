package core

import (
	"testing"
	"time"
)

func TestFIFOQueue_PutTakeOrder(t *testing.T) {
	q := newFIFOQueue()
	a := NewTask(func() error { return nil })
	b := NewTask(func() error { return nil })

	q.Put(a)
	q.Put(b)

	got1, ok := q.Take()
	if !ok || got1 != a {
		t.Fatalf("first Take() = %v, %v; want a, true", got1, ok)
	}
	got2, ok := q.Take()
	if !ok || got2 != b {
		t.Fatalf("second Take() = %v, %v; want b, true", got2, ok)
	}
}

func TestFIFOQueue_TakeBlocksUntilPut(t *testing.T) {
	q := newFIFOQueue()
	taken := make(chan *Task, 1)

	go func() {
		v, ok := q.Take()
		if ok {
			taken <- v
		}
	}()

	select {
	case <-taken:
		t.Fatal("Take should block on an empty open queue")
	case <-time.After(50 * time.Millisecond):
	}

	task := NewTask(func() error { return nil })
	q.Put(task)

	select {
	case v := <-taken:
		if v != task {
			t.Fatal("Take returned the wrong task")
		}
	case <-time.After(time.Second):
		t.Fatal("Take never unblocked after Put")
	}
}

func TestFIFOQueue_CloseDrainsThenStops(t *testing.T) {
	q := newFIFOQueue()
	task := NewTask(func() error { return nil })
	q.Put(task)
	q.Close()

	v, ok := q.Take()
	if !ok || v != task {
		t.Fatalf("Take after Close should still drain buffered items, got %v, %v", v, ok)
	}

	_, ok = q.Take()
	if ok {
		t.Fatal("Take on a closed, empty queue should return ok=false")
	}
}

func TestFIFOQueue_PutAfterCloseFails(t *testing.T) {
	q := newFIFOQueue()
	q.Close()

	if q.Put(NewTask(func() error { return nil })) {
		t.Fatal("Put on a closed queue should return false")
	}
}

func TestFIFOQueue_CancelDiscardsBuffer(t *testing.T) {
	q := newFIFOQueue()
	q.Put(NewTask(func() error { return nil }))
	q.Cancel()

	_, ok := q.Take()
	if ok {
		t.Fatal("Take after Cancel should not return buffered items")
	}
	if !q.IsClosed() {
		t.Fatal("Cancel should leave the queue closed")
	}
}

func TestDeadlineQueue_PopsSoonestDeadlineFirst(t *testing.T) {
	q := newDeadlineQueue()
	now := time.Now()

	late := NewTask(func() error { return nil })
	late.SetTimeTrigger(now.Add(time.Hour))
	soon := NewTask(func() error { return nil })
	soon.SetTimeTrigger(now.Add(time.Millisecond))
	soonest := NewTask(func() error { return nil })
	soonest.SetTimeTrigger(now)

	q.Put(late)
	q.Put(soon)
	q.Put(soonest)

	first, _ := q.Take()
	second, _ := q.Take()
	third, _ := q.Take()

	if first != soonest || second != soon || third != late {
		t.Fatal("deadlineQueue did not pop in ascending time-trigger order")
	}
}

func TestDeadlineQueue_StableForEqualDeadlines(t *testing.T) {
	q := newDeadlineQueue()
	at := time.Now().Add(time.Minute)

	a := NewTask(func() error { return nil })
	a.SetTimeTrigger(at)
	b := NewTask(func() error { return nil })
	b.SetTimeTrigger(at)

	q.Put(a)
	q.Put(b)

	first, _ := q.Take()
	second, _ := q.Take()
	if first != a || second != b {
		t.Fatal("equal-deadline tasks should pop in insertion order")
	}
}
