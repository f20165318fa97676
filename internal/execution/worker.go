package execution

import (
	"context"
	"sync"
	"time"

	"runnable"
	"runnable/internal/config"
	"runnable/internal/domain"
	"runnable/internal/metrics"
	"runnable/internal/ui"
)

// WorkerPool manages a pool of workers for parallel case execution
type WorkerPool struct {
	config    *config.Config
	runner    *Runner
	scheduler Scheduler
	progress  *ui.ProgressBar
	metrics   *metrics.Collector
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, scheduler Scheduler) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		runner:    runner,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// SetMetrics sets the Prometheus collector. A nil collector disables recording.
func (wp *WorkerPool) SetMetrics(collector *metrics.Collector) {
	wp.metrics = collector
}

// progressTracker counts finished cases under one lock
type progressTracker struct {
	mu        sync.Mutex
	completed int
	passed    int
	failed    int
	skipped   int
}

// account records one finished case and refreshes progress and metrics
func (wp *WorkerPool) account(t *progressTracker, result domain.CaseResult) {
	t.mu.Lock()
	t.completed++
	switch {
	case result.Skipped:
		t.skipped++
	case result.Success:
		t.passed++
	default:
		t.failed++
	}
	if wp.progress != nil {
		wp.progress.Update(t.completed, t.passed, t.failed)
	}
	t.mu.Unlock()

	if wp.metrics != nil {
		label := metrics.ResultPass
		switch {
		case result.Skipped:
			label = metrics.ResultSkip
		case !result.Success:
			label = metrics.ResultFail
		}
		wp.metrics.RecordCase(result.Name, label, result.Duration)
	}
}

func (wp *WorkerPool) workerCount() int {
	if wp.config.Workers <= 0 {
		return 1
	}
	return wp.config.Workers
}

// Execute executes cases in parallel using the worker pool (no fail-fast).
func (wp *WorkerPool) Execute(cases []runnable.Case) ([]domain.CaseResult, time.Duration, error) {
	return wp.ExecuteWithOptions(cases, false)
}

// ExecuteWithOptions executes cases with optional fail-fast (stop on first failure).
func (wp *WorkerPool) ExecuteWithOptions(cases []runnable.Case, failFast bool) ([]domain.CaseResult, time.Duration, error) {
	if len(cases) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return wp.executeAll(cases)
	}
	return wp.executeFailFast(cases)
}

// executeAll runs every case, pulling from a shared queue.
func (wp *WorkerPool) executeAll(cases []runnable.Case) ([]domain.CaseResult, time.Duration, error) {
	caseQueue := make(chan runnable.Case, len(cases))
	results := make(chan domain.CaseResult, len(cases))
	for _, c := range cases {
		caseQueue <- c
	}
	close(caseQueue)

	tracker := &progressTracker{}
	startTime := time.Now()
	workerCount := wp.workerCount()

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for c := range caseQueue {
				result := wp.runner.Run(c, workerID)
				results <- result
				wp.account(tracker, result)
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CaseResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

// executeFailFast runs cases and stops after the first failure.
func (wp *WorkerPool) executeFailFast(cases []runnable.Case) ([]domain.CaseResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	caseQueue := make(chan runnable.Case, 1)
	results := make(chan domain.CaseResult, len(cases))

	go func() {
		defer close(caseQueue)
		for _, c := range cases {
			select {
			case <-ctx.Done():
				return
			case caseQueue <- c:
			}
		}
	}()

	tracker := &progressTracker{}
	var seenFailure bool
	startTime := time.Now()
	workerCount := wp.workerCount()

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for c := range caseQueue {
				result := wp.runner.Run(c, workerID)
				tracker.mu.Lock()
				done := seenFailure
				tracker.mu.Unlock()
				if done {
					continue
				}
				results <- result
				wp.account(tracker, result)
				if !result.Success {
					tracker.mu.Lock()
					seenFailure = true
					tracker.mu.Unlock()
					cancel()
				}
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CaseResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

// ExecuteSharded pre-partitions cases across workers with the scheduler
// instead of pulling from a shared queue. Cases within one shard run in
// order on the same worker.
func (wp *WorkerPool) ExecuteSharded(cases []runnable.Case) ([]domain.CaseResult, time.Duration, error) {
	if len(cases) == 0 {
		return nil, 0, nil
	}

	shards := wp.scheduler.Schedule(cases, wp.workerCount())
	results := make(chan domain.CaseResult, len(cases))
	tracker := &progressTracker{}
	startTime := time.Now()

	var wg sync.WaitGroup
	for i, shard := range shards {
		if len(shard) == 0 {
			continue
		}
		wg.Add(1)
		go func(workerID int, shard []runnable.Case) {
			defer wg.Done()
			for _, c := range shard {
				result := wp.runner.Run(c, workerID)
				results <- result
				wp.account(tracker, result)
			}
		}(i+1, shard)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.CaseResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}
