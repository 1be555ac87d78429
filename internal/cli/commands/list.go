package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"balpath/internal/config"
	"balpath/internal/storage"
	"balpath/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	manifest, err := lc.storage.Load()
	if err != nil {
		return err
	}

	if len(manifest.Paths) == 0 {
		color.Yellow("Manifest is empty")
		return nil
	}

	if lc.config.Flags.LabelsOnly {
		lc.formatter.PrintLabels(manifest)
		return nil
	}
	lc.formatter.PrintPaths(manifest, lc.config.Flags.WithLabels)
	return nil
}
