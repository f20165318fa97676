package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"runnable"
	"runnable/internal/config"
	"runnable/internal/discovery"
	"runnable/internal/domain"
	"runnable/internal/execution"
	"runnable/internal/logging"
	"runnable/internal/metrics"
	"runnable/internal/storage"
	"runnable/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	registry  *runnable.Registry
	selector  *discovery.Selector
	scanner   *discovery.Scanner
	executor  *execution.WorkerPool
	collector *metrics.Collector
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	registry *runnable.Registry,
	selector *discovery.Selector,
	scanner *discovery.Scanner,
	executor *execution.WorkerPool,
	collector *metrics.Collector,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		registry:  registry,
		selector:  selector,
		scanner:   scanner,
		executor:  executor,
		collector: collector,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	logging.SetLevel(rc.config.GetLogLevel())

	// Select cases
	cases, err := selectCases(rc.config, rc.registry, rc.selector, rc.scanner, rc.storage)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		color.Yellow("No cases to execute")
		return nil
	}

	// Serve metrics while the run is in flight
	if addr := rc.config.GetMetricsAddr(); addr != "" {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		rc.collector.SetRegistered(rc.registry.Count())
		go func() {
			if err := metrics.Serve(ctx, addr); err != nil {
				logging.Warn("Metrics server: %v", err)
			}
		}()
	}

	// Create and set progress bar
	progressBar := ui.NewProgressBar(len(cases))
	rc.executor.SetProgress(progressBar)

	// Execute cases
	var results []domain.CaseResult
	var duration time.Duration
	if rc.config.Flags.Sharded {
		results, duration, err = rc.executor.ExecuteSharded(cases)
	} else {
		results, duration, err = rc.executor.ExecuteWithOptions(cases, rc.config.Flags.FailFast)
	}
	if err != nil {
		return err
	}

	// Optionally give failed cases one more chance
	if rc.config.Flags.RerunFailures {
		results, duration = rc.rerunFailures(cases, results, duration)
	}

	// Collect failure diagnostics
	var failures []domain.CaseFailure
	for _, result := range results {
		if !result.Success {
			failures = append(failures, domain.NewCaseFailure(result))
		}
	}

	rc.collector.RecordRun(duration)

	// Save results
	if err := rc.storage.Save(results, failures, duration, rc.config.Workers); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	// Print stats
	if err := rc.formatter.PrintMetaStats(); err != nil {
		return err
	}

	// Optionally open the interactive failure viewer
	if rc.config.Flags.OpenFails && len(failures) > 0 {
		output, err := rc.storage.Load()
		if err != nil {
			return err
		}
		return rc.viewer.View(output)
	}

	return nil
}

// rerunFailures reruns failed cases once and merges the fresh outcomes
// into the original results.
func (rc *RunCommand) rerunFailures(cases []runnable.Case, results []domain.CaseResult, duration time.Duration) ([]domain.CaseResult, time.Duration) {
	byName := make(map[string]runnable.Case, len(cases))
	for _, c := range cases {
		byName[c.Name] = c
	}

	var failedCases []runnable.Case
	for _, result := range results {
		if !result.Success {
			if c, ok := byName[result.Name]; ok {
				failedCases = append(failedCases, c)
			}
		}
	}
	if len(failedCases) == 0 {
		return results, duration
	}

	logging.Info("Rerunning %d failed case(s)", len(failedCases))
	rc.executor.SetProgress(ui.NewProgressBar(len(failedCases)))
	rerunResults, rerunDuration, err := rc.executor.Execute(failedCases)
	if err != nil {
		logging.Warn("Rerun failed: %v", err)
		return results, duration
	}

	fresh := make(map[string]domain.CaseResult, len(rerunResults))
	for _, result := range rerunResults {
		fresh[result.Name] = result
	}
	for i, result := range results {
		if updated, ok := fresh[result.Name]; ok {
			results[i] = updated
		}
	}
	return results, duration + rerunDuration
}
