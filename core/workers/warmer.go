// ABOUTME: Warmer keeps chosen queries cached by re-running them on an interval
// ABOUTME: Runs a small worker pool so slow upstream calls do not delay each other

package workers

import (
	"context"
	"sync"
	"time"

	"newsapi-connector/core/domain"
	"newsapi-connector/core/interfaces"
)

// Job is one query kept warm
type Job struct {
	Endpoint domain.Endpoint
	Params   domain.Params
	TTL      time.Duration
}

// WarmerConfig holds configuration for the warmer
type WarmerConfig struct {
	MaxWorkers int
	QueueSize  int

	// Interval between rounds. An entry is refetched at most Interval
	// after it expires.
	Interval time.Duration
}

// DefaultWarmerConfig returns the default warmer configuration
func DefaultWarmerConfig() WarmerConfig {
	return WarmerConfig{
		MaxWorkers: 4,
		QueueSize:  32,
		Interval:   5 * time.Minute,
	}
}

// Warmer re-runs a fixed set of queries through the cached façade
type Warmer struct {
	service  interfaces.NewsService
	logger   interfaces.Logger
	jobs     []Job
	interval time.Duration

	jobQueue   chan Job
	maxWorkers int
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
}

// NewWarmer creates a stopped warmer for jobs. logger may be nil.
func NewWarmer(service interfaces.NewsService, jobs []Job, logger interfaces.Logger, config WarmerConfig) *Warmer {
	defaults := DefaultWarmerConfig()
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = defaults.MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}

	return &Warmer{
		service:    service,
		logger:     logger,
		jobs:       append([]Job(nil), jobs...),
		interval:   config.Interval,
		maxWorkers: config.MaxWorkers,
		jobQueue:   make(chan Job, config.QueueSize),
	}
}

// Start launches the workers and runs the first round immediately
func (w *Warmer) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	w.ctx, w.cancel = context.WithCancel(context.Background())

	for i := 0; i < w.maxWorkers; i++ {
		w.wg.Add(1)
		go w.work()
	}

	w.wg.Add(1)
	go w.schedule()

	w.running = true
	return nil
}

// Stop cancels in-flight queries and waits for the workers to exit
func (w *Warmer) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.cancel()
	w.wg.Wait()

	w.running = false
	return nil
}

// Submit queues a one-off job
func (w *Warmer) Submit(job Job) error {
	w.mu.Lock()
	running := w.running
	ctx := w.ctx
	w.mu.Unlock()

	if !running {
		return ErrWorkerNotRunning
	}

	select {
	case w.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ErrWorkerNotRunning
	default:
		return ErrQueueFull
	}
}

// schedule enqueues every job now and once per interval
func (w *Warmer) schedule() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.enqueueRound()

		select {
		case <-ticker.C:
		case <-w.ctx.Done():
			return
		}
	}
}

func (w *Warmer) enqueueRound() {
	for _, job := range w.jobs {
		select {
		case w.jobQueue <- job:
		case <-w.ctx.Done():
			return
		default:
			w.log("Warm queue full, skipping job", map[string]interface{}{
				"endpoint": string(job.Endpoint),
			})
		}
	}
}

// work is the main loop for each worker
func (w *Warmer) work() {
	defer w.wg.Done()

	for {
		select {
		case job := <-w.jobQueue:
			w.process(job)
		case <-w.ctx.Done():
			return
		}
	}
}

func (w *Warmer) process(job Job) {
	var (
		result domain.Result
		err    error
	)

	switch job.Endpoint {
	case domain.EndpointEverything:
		result, err = w.service.SearchByTopic(w.ctx, job.Params, job.TTL)
	case domain.EndpointTopHeadlines:
		result, err = w.service.TopHeadlines(w.ctx, job.Params, job.TTL)
	default:
		w.log("Unknown warm endpoint", map[string]interface{}{"endpoint": string(job.Endpoint)})
		return
	}

	if err != nil {
		w.log("Warm query failed", map[string]interface{}{
			"endpoint": string(job.Endpoint),
			"error":    err.Error(),
		})
		return
	}

	if w.logger != nil {
		w.logger.Debug("Warm query completed", map[string]interface{}{
			"endpoint": string(job.Endpoint),
			"found":    !result.Absent(),
		})
	}
}

func (w *Warmer) log(msg string, fields map[string]interface{}) {
	if w.logger != nil {
		w.logger.Warn(msg, fields)
	}
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "warmer is not running"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
