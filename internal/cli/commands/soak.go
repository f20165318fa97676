package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"runnable"
	"runnable/internal/config"
	"runnable/internal/discovery"
	"runnable/internal/execution"
	"runnable/internal/logging"
	"runnable/internal/metrics"
	"runnable/internal/sched"
	"runnable/internal/storage"
)

// SoakCommand handles the soak command
type SoakCommand struct {
	config    *config.Config
	registry  *runnable.Registry
	selector  *discovery.Selector
	scanner   *discovery.Scanner
	executor  *execution.WorkerPool
	collector *metrics.Collector
	storage   storage.Storage
}

// NewSoakCommand creates a new SoakCommand
func NewSoakCommand(
	cfg *config.Config,
	registry *runnable.Registry,
	selector *discovery.Selector,
	scanner *discovery.Scanner,
	executor *execution.WorkerPool,
	collector *metrics.Collector,
	st storage.Storage,
) *SoakCommand {
	return &SoakCommand{
		config:    cfg,
		registry:  registry,
		selector:  selector,
		scanner:   scanner,
		executor:  executor,
		collector: collector,
		storage:   st,
	}
}

// Execute runs the command
func (sc *SoakCommand) Execute(cmd *cobra.Command, args []string) error {
	logging.SetLevel(sc.config.GetLogLevel())

	cases, err := selectCases(sc.config, sc.registry, sc.selector, sc.scanner, sc.storage)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		color.Yellow("No cases to soak")
		return nil
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sc.collector.SetRegistered(sc.registry.Count())
	if addr := sc.config.GetMetricsAddr(); addr != "" {
		go func() {
			if err := metrics.Serve(ctx, addr); err != nil {
				logging.Warn("Metrics server: %v", err)
			}
		}()
	}

	scheduler := sched.New(sc.config, sc.executor, sc.storage, sc.collector, cases)

	// One-shot mode: run a single named case through the soak pipeline
	if sc.config.Flags.Once != "" {
		return scheduler.RunNow(sc.config.Flags.Once)
	}

	if err := scheduler.Start(ctx, sc.config.GetCronSpec()); err != nil {
		return err
	}
	defer scheduler.Stop()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logging.Info("Received shutdown signal, shutting down gracefully...")
	cancel()
	return nil
}
