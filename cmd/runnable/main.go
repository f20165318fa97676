package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"runnable/internal/cli"
	"runnable/internal/cli/commands"
	"runnable/internal/config"

	// Register the bundled case corpus
	_ "runnable/cases"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "runnable",
		Short:   "Named, timed case harness",
		Long:    `A harness for named, timed runnable cases. Register cases once, then run them in parallel workers with start/end markers, persisted results and an interactive failure viewer.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
