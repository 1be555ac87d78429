package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"balpath/internal/config"
	"balpath/internal/storage"
)

// ExportCommand handles the export command
type ExportCommand struct {
	config  *config.Config
	storage storage.Storage
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(cfg *config.Config, st storage.Storage) *ExportCommand {
	return &ExportCommand{
		config:  cfg,
		storage: st,
	}
}

// Execute runs the command
func (ec *ExportCommand) Execute(cmd *cobra.Command, args []string) error {
	manifest, err := ec.storage.Load()
	if err != nil {
		return err
	}

	exporter, err := storage.NewMySQLExporter(ec.config.GetDatabase(), ec.config.Table)
	if err != nil {
		return err
	}

	rows, err := exporter.Export(cmd.Context(), manifest)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	color.Green("✓ Exported %d path(s) to table %s", rows, ec.config.Table)
	return nil
}
