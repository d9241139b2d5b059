package prometheus

import (
	"context"
	"sync"
	"time"

	"github.com/corework/taskengine/core"
	prom "github.com/prometheus/client_golang/prometheus"
)

// ExecutorSnapshotProvider provides current executor stats snapshots. *core.Executor
// satisfies this directly via its Stats method.
type ExecutorSnapshotProvider interface {
	Stats() core.ExecutorStats
}

// SnapshotPoller periodically exports an executor's Stats() snapshot into
// Prometheus gauges, for the counters core.Metrics has no natural hook for
// (queue depth is pushed live through RecordQueueDepth; workers/active/closed
// are only available by polling Stats()).
type SnapshotPoller struct {
	interval time.Duration

	mu           sync.RWMutex
	executor     ExecutorSnapshotProvider
	executorName string

	workers *prom.GaugeVec
	queued  *prom.GaugeVec
	active  *prom.GaugeVec
	closed  *prom.GaugeVec

	stateMu sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSnapshotPoller creates a snapshot poller and registers its collectors.
func NewSnapshotPoller(reg prom.Registerer, interval time.Duration) (*SnapshotPoller, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	if interval <= 0 {
		interval = time.Second
	}

	workers := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "taskengine",
		Name:      "executor_workers",
		Help:      "Configured worker goroutine count.",
	}, []string{"executor"})
	queued := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "taskengine",
		Name:      "executor_queued",
		Help:      "Tasks currently sitting in the ready-queue.",
	}, []string{"executor"})
	active := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "taskengine",
		Name:      "executor_active",
		Help:      "Tasks currently claimed and running.",
	}, []string{"executor"})
	closed := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "taskengine",
		Name:      "executor_closed",
		Help:      "Executor closed state (1=closed, 0=open).",
	}, []string{"executor"})

	var err error
	if workers, err = registerCollector(reg, workers); err != nil {
		return nil, err
	}
	if queued, err = registerCollector(reg, queued); err != nil {
		return nil, err
	}
	if active, err = registerCollector(reg, active); err != nil {
		return nil, err
	}
	if closed, err = registerCollector(reg, closed); err != nil {
		return nil, err
	}

	return &SnapshotPoller{
		interval: interval,
		workers:  workers,
		queued:   queued,
		active:   active,
		closed:   closed,
	}, nil
}

// Watch sets the executor whose snapshot is polled and labels its series
// with name. Replaces any previously watched executor.
func (p *SnapshotPoller) Watch(name string, executor ExecutorSnapshotProvider) {
	if p == nil || executor == nil {
		return
	}
	p.mu.Lock()
	p.executorName = normalizeLabel(name, "default")
	p.executor = executor
	p.mu.Unlock()
}

// Start begins periodic polling; repeated calls are no-ops.
func (p *SnapshotPoller) Start(ctx context.Context) {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if p.running {
		p.stateMu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true
	p.stateMu.Unlock()

	go p.loop(pollCtx)
}

// Stop stops periodic polling; repeated calls are safe.
func (p *SnapshotPoller) Stop() {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if !p.running {
		p.stateMu.Unlock()
		return
	}
	cancel := p.cancel
	done := p.done
	p.stateMu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	p.stateMu.Lock()
	p.running = false
	p.cancel = nil
	p.done = nil
	p.stateMu.Unlock()
}

func (p *SnapshotPoller) loop(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.collectOnce()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.collectOnce()
		}
	}
}

func (p *SnapshotPoller) collectOnce() {
	p.mu.RLock()
	executor, name := p.executor, p.executorName
	p.mu.RUnlock()

	if executor == nil {
		return
	}

	stats := executor.Stats()
	p.workers.WithLabelValues(name).Set(float64(stats.Workers))
	p.queued.WithLabelValues(name).Set(float64(stats.Queued))
	p.active.WithLabelValues(name).Set(float64(stats.Active))
	if stats.Closed {
		p.closed.WithLabelValues(name).Set(1)
	} else {
		p.closed.WithLabelValues(name).Set(0)
	}
}
