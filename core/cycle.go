package core

import (
	"fmt"

	"github.com/gammazero/toposort"
)

// DetectCycle reports whether the dependency/trigger graph reachable from
// tasks contains a cycle. The engine itself never calls this — per the
// baseline contract, a cyclic task simply never becomes ready and is
// canceled at shutdown — but callers who would rather fail fast at
// construction time can run it before Submit.
//
// Both dependency edges and trigger edges are checked: a cycle in either
// relation means some task can never reach canBeExecuted == true.
func DetectCycle(tasks ...*Task) error {
	edges := collectEdges(tasks)
	if len(edges) == 0 {
		return nil
	}

	if _, err := toposort.Toposort(edges); err != nil {
		return fmt.Errorf("taskengine: dependency graph contains a cycle: %w", err)
	}
	return nil
}

func collectEdges(tasks []*Task) []toposort.Edge {
	seen := make(map[*Task]bool)
	var edges []toposort.Edge

	var visit func(t *Task)
	visit = func(t *Task) {
		if t == nil || seen[t] {
			return
		}
		seen[t] = true

		deps, triggers, _ := t.snapshot()
		for _, d := range deps {
			edges = append(edges, toposort.Edge{d, t})
			visit(d)
		}
		for _, tr := range triggers {
			edges = append(edges, toposort.Edge{tr, t})
			visit(tr)
		}
	}

	for _, t := range tasks {
		visit(t)
	}
	return edges
}
