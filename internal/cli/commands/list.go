package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"runnable"
	"runnable/internal/config"
	"runnable/internal/discovery"
	"runnable/internal/storage"
	"runnable/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	registry  *runnable.Registry
	selector  *discovery.Selector
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	registry *runnable.Registry,
	selector *discovery.Selector,
	st storage.Storage,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		registry:  registry,
		selector:  selector,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	names := lc.selector.Filter(lc.registry.Names(), lc.config.Flags.NameFilter)

	cases := make([]runnable.Case, 0, len(names))
	for _, name := range names {
		if c, ok := lc.registry.Get(name); ok {
			cases = append(cases, c)
		}
	}

	if len(cases) == 0 {
		color.Yellow("No cases found")
		return nil
	}

	// Mark cases that failed in the last run, when results exist
	failedNames := make(map[string]struct{})
	if output, err := lc.storage.Load(); err == nil {
		for _, failure := range output.Failures {
			if !failure.Resolved {
				failedNames[failure.Name] = struct{}{}
			}
		}
	}

	return lc.formatter.PrintCaseList(cases, lc.config.Flags.Detail, failedNames)
}
