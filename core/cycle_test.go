package core

import "testing"

func TestDetectCycle_NoDependencies(t *testing.T) {
	a := NewTask(func() error { return nil })
	b := NewTask(func() error { return nil })

	if err := DetectCycle(a, b); err != nil {
		t.Fatalf("unexpected error for independent tasks: %v", err)
	}
}

func TestDetectCycle_LinearChain(t *testing.T) {
	a := NewTask(func() error { return nil })
	b := NewTask(func() error { return nil })
	c := NewTask(func() error { return nil })
	b.AddDependency(a)
	c.AddDependency(b)

	if err := DetectCycle(a, b, c); err != nil {
		t.Fatalf("unexpected error for a linear chain: %v", err)
	}
}

func TestDetectCycle_DirectCycle(t *testing.T) {
	a := NewTask(func() error { return nil })
	b := NewTask(func() error { return nil })
	a.AddDependency(b)
	b.AddDependency(a)

	if err := DetectCycle(a, b); err == nil {
		t.Fatal("expected an error for a two-task dependency cycle")
	}
}

func TestDetectCycle_ThroughTriggers(t *testing.T) {
	a := NewTask(func() error { return nil })
	b := NewTask(func() error { return nil })
	a.AddTrigger(b)
	b.AddTrigger(a)

	if err := DetectCycle(a, b); err == nil {
		t.Fatal("expected an error for a cycle formed through triggers")
	}
}
