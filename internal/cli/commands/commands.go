package commands

import (
	"os"

	"github.com/spf13/cobra"

	"runnable"
	"runnable/internal/cli"
	"runnable/internal/config"
	"runnable/internal/discovery"
	"runnable/internal/execution"
	"runnable/internal/metrics"
	"runnable/internal/storage"
	"runnable/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	Fail *FailsCommand
	Soak *SoakCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	registry := runnable.Default()
	selector := discovery.NewSelector()
	scanner := discovery.NewScanner(cfg.PathsToIgnore)
	runner := execution.NewRunner(execution.NewLockedWriter(os.Stdout))
	scheduler := execution.NewRoundRobinScheduler()
	executor := execution.NewWorkerPool(cfg, runner, scheduler)
	collector := metrics.NewCollector()
	executor.SetMetrics(collector)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:  NewRunCommand(cfg, registry, selector, scanner, executor, collector, jsonStorage, formatter, errorViewer),
		List: NewListCommand(cfg, registry, selector, jsonStorage, formatter),
		Fail: NewFailsCommand(cfg, jsonStorage, errorViewer),
		Soak: NewSoakCommand(cfg, registry, selector, scanner, executor, collector, jsonStorage),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run registered cases in parallel",
		Long:  "Select and execute registered cases using parallel workers",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.Flags = flags.ToConfigFlags()
			if flags.Workers > 0 {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	runCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of parallel workers (default 4, or RUNNABLE_WORKERS)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name (exact name, a 'group/' prefix, or wildcards like '*fib*')")
	runCmd.Flags().StringVar(&flags.Suite, "suite", "", "Run the cases selected by a suite file")
	runCmd.Flags().StringVar(&flags.SuiteDir, "suite-dir", "", "Discover *.suite.yaml files under this directory and run their union")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first case failure")
	runCmd.Flags().BoolVar(&flags.OnlyFailed, "failed", false, "Run only cases that failed in the last run (from storage/run-results.json)")
	runCmd.Flags().BoolVar(&flags.RerunFailures, "rerun-failures", false, "After running all cases, rerun only failed ones once and save that result")
	runCmd.Flags().BoolVar(&flags.Sharded, "sharded", false, "Pre-partition cases across workers instead of pulling from a shared queue")
	runCmd.Flags().BoolVar(&flags.OpenFails, "open-fails", false, "Open the fails viewer when the run finishes with failures")
	runCmd.Flags().StringVar(&flags.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running (e.g. :9090)")
	runCmd.Flags().StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered cases",
		Long:  "List registered cases without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name (exact name, a 'group/' prefix, or wildcards like '*fib*')")
	listCmd.Flags().BoolVarP(&flags.Detail, "detail", "d", false, "Show skip and panic annotations for each case")
	rootCmd.AddCommand(listCmd)

	// Fails command
	failsCmd := &cobra.Command{
		Use:   "fails",
		Short: "View case failures interactively",
		Long:  "Display case failures from the last run in an interactive viewer",
		RunE:  c.Fail.Execute,
	}
	rootCmd.AddCommand(failsCmd)

	// Soak command
	soakCmd := &cobra.Command{
		Use:   "soak",
		Short: "Run cases repeatedly on a schedule",
		Long:  "Keep executing the selected cases on a cron schedule, persisting results each cycle",
		RunE:  c.Soak.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			if flags.Workers > 0 {
				cfg.Workers = flags.Workers
			}
			return nil
		},
	}
	soakCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of parallel workers (default 4, or RUNNABLE_WORKERS)")
	soakCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name (exact name, a 'group/' prefix, or wildcards like '*fib*')")
	soakCmd.Flags().StringVar(&flags.Suite, "suite", "", "Soak the cases selected by a suite file")
	soakCmd.Flags().StringVar(&flags.CronSpec, "cron", "", `Cron spec for cycles (default "@every 1m", or RUNNABLE_CRON)`)
	soakCmd.Flags().StringVar(&flags.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	soakCmd.Flags().StringVar(&flags.Once, "once", "", "Run the named case once through the soak pipeline and exit")
	rootCmd.AddCommand(soakCmd)
}
