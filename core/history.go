package core

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultHistoryCapacity = 100

// ExecutionRecord captures one finished task's metadata, for observability
// only. It is kept in a bounded in-memory window — there is no persistence
// across process restarts (a named Non-goal).
type ExecutionRecord struct {
	TaskID     uuid.UUID
	Status     string
	StartedAt  time.Time
	FinishedAt time.Time
	Duration   time.Duration
}

// executionHistory retains the most recent ExecutionRecords up to a fixed
// capacity, oldest-dropped-first. Unlike a ring buffer indexed by a moving
// head pointer, it keeps records in straightforward append order and trims
// the front once over capacity; at the capacities this is used at (a few
// hundred entries at most) the occasional O(n) trim is cheaper to reason
// about than wraparound index arithmetic, and the executor only touches it
// once per finished task on the task-completion path, never on a hot loop.
type executionHistory struct {
	mu       sync.Mutex
	records  []ExecutionRecord
	capacity int
}

func newExecutionHistory(capacity int) *executionHistory {
	if capacity < 1 {
		capacity = defaultHistoryCapacity
	}
	return &executionHistory{capacity: capacity}
}

func (h *executionHistory) add(record ExecutionRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, record)
	if overflow := len(h.records) - h.capacity; overflow > 0 {
		h.records = append(h.records[:0], h.records[overflow:]...)
	}
}

// Recent returns up to limit of the most-recently-finished tasks, most
// recent first. limit <= 0 means "all retained entries".
func (h *executionHistory) Recent(limit int) []ExecutionRecord {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.records)
	if n == 0 {
		return nil
	}
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]ExecutionRecord, limit)
	for i := 0; i < limit; i++ {
		out[i] = h.records[n-1-i]
	}
	return out
}
