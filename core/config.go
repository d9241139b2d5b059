package core

// ExecutorConfig holds the executor's ambient stack. Every field is
// optional; unset fields fall back to no-op or default implementations,
// mirroring the teacher's TaskSchedulerConfig pattern.
type ExecutorConfig struct {
	// Logger receives lifecycle events (executor start, task complete, task
	// fail, cancel at shutdown, shutdown request). Defaults to NoOpLogger.
	Logger Logger

	// Metrics receives task duration/panic/queue-depth/rejection
	// observations. Defaults to NilMetrics.
	Metrics Metrics

	// PanicHandler is invoked (in addition to the panic becoming the
	// task's error) whenever a task body panics. Defaults to
	// NoOpPanicHandler.
	PanicHandler PanicHandler

	// HistoryCapacity bounds the in-memory window of recently finished
	// tasks. Defaults to 100 if <= 0.
	HistoryCapacity int

	// QueueFactory builds the ready-queue backing the executor. Defaults
	// to the FIFO queue; pass DeadlineQueueFactory for the time-trigger
	// ordered heap queue.
	QueueFactory func() Queue
}

// DefaultExecutorConfig returns a config with every ambient hook set to its
// no-op default and the FIFO ready-queue.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		Logger:          NewNoOpLogger(),
		Metrics:         NilMetrics{},
		PanicHandler:    NoOpPanicHandler{},
		HistoryCapacity: defaultHistoryCapacity,
		QueueFactory:    FIFOQueueFactory,
	}
}

// FIFOQueueFactory builds the baseline FIFO ready-queue.
func FIFOQueueFactory() Queue {
	return newFIFOQueue()
}

// DeadlineQueueFactory builds the min-heap ready-queue that pops the
// soonest-due time-trigger first (the §9 scheduling optimization).
func DeadlineQueueFactory() Queue {
	return newDeadlineQueue()
}

func (c ExecutorConfig) withDefaults() ExecutorConfig {
	if c.Logger == nil {
		c.Logger = NewNoOpLogger()
	}
	if c.Metrics == nil {
		c.Metrics = NilMetrics{}
	}
	if c.PanicHandler == nil {
		c.PanicHandler = NoOpPanicHandler{}
	}
	if c.HistoryCapacity <= 0 {
		c.HistoryCapacity = defaultHistoryCapacity
	}
	if c.QueueFactory == nil {
		c.QueueFactory = FIFOQueueFactory
	}
	return c
}
