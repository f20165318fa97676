package commands

import (
	"github.com/spf13/cobra"

	"runnable/internal/config"
	"runnable/internal/storage"
	"runnable/internal/ui"
)

// FailsCommand handles the fails command
type FailsCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewFailsCommand creates a new FailsCommand
func NewFailsCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *FailsCommand {
	return &FailsCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (fc *FailsCommand) Execute(cmd *cobra.Command, args []string) error {
	results, err := fc.storage.Load()
	if err != nil {
		return err
	}

	return fc.viewer.View(results)
}
