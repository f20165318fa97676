// Package sched repeats harness runs on a cron schedule for soak-style
// monitoring of the registered cases.
package sched

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"runnable"
	"runnable/internal/config"
	"runnable/internal/domain"
	"runnable/internal/execution"
	"runnable/internal/logging"
	"runnable/internal/metrics"
	"runnable/internal/storage"
)

// Scheduler runs the configured cases repeatedly on a cron schedule
type Scheduler struct {
	cron      *cron.Cron
	config    *config.Config
	pool      execution.Executor
	storage   storage.Storage
	collector *metrics.Collector
	cases     []runnable.Case
}

// New creates a new scheduler over the given cases. The collector may be nil.
func New(cfg *config.Config, pool execution.Executor, st storage.Storage, collector *metrics.Collector, cases []runnable.Case) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		config:    cfg,
		pool:      pool,
		storage:   st,
		collector: collector,
		cases:     cases,
	}
}

// Start begins scheduling cycles on the given cron spec
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	entryID, err := s.cron.AddFunc(spec, func() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		s.runCycle()
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}

	logging.Info("Scheduled %d case(s) on %q (entry ID: %d)", len(s.cases), spec, entryID)
	s.cron.Start()
	logging.Info("Soak scheduler started")
	return nil
}

// Stop stops the scheduler and waits for a running cycle to finish
func (s *Scheduler) Stop() {
	logging.Info("Stopping soak scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logging.Info("Soak scheduler stopped")
}

// RunNow immediately runs a single scheduled case (useful for smoke checks)
func (s *Scheduler) RunNow(name string) error {
	for _, c := range s.cases {
		if c.Name == name {
			logging.Info("Running case on demand: %s", name)
			results, duration, err := s.pool.Execute([]runnable.Case{c})
			if err != nil {
				return err
			}
			return s.persist(results, duration)
		}
	}
	return fmt.Errorf("case not found: %s", name)
}

// runCycle executes every scheduled case once and persists the results
func (s *Scheduler) runCycle() {
	logging.Info("Soak cycle starting: %d case(s)", len(s.cases))
	results, duration, err := s.pool.Execute(s.cases)
	if err != nil {
		logging.Error("Soak cycle failed: %v", err)
		return
	}
	if err := s.persist(results, duration); err != nil {
		logging.Error("Save soak results: %v", err)
	}
}

func (s *Scheduler) persist(results []domain.CaseResult, duration time.Duration) error {
	var failures []domain.CaseFailure
	var passed, failed, skipped int
	for _, result := range results {
		switch {
		case result.Skipped:
			skipped++
		case result.Success:
			passed++
		default:
			failed++
			failures = append(failures, domain.NewCaseFailure(result))
		}
	}

	if err := s.storage.Save(results, failures, duration, s.config.Workers); err != nil {
		return err
	}
	if s.collector != nil {
		s.collector.RecordRun(duration)
	}

	logging.Info("Soak cycle finished: %d passed, %d failed, %d skipped in %s",
		passed, failed, skipped, duration.Round(time.Millisecond))
	return nil
}
