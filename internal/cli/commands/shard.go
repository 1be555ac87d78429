package commands

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"balpath/internal/batching"
	"balpath/internal/config"
	"balpath/internal/storage"
	"balpath/internal/ui"
)

// ShardCommand handles the shard command
type ShardCommand struct {
	config    *config.Config
	storage   storage.Storage
	scheduler batching.Scheduler
	formatter *ui.Formatter
}

// NewShardCommand creates a new ShardCommand
func NewShardCommand(cfg *config.Config, st storage.Storage, scheduler batching.Scheduler, formatter *ui.Formatter) *ShardCommand {
	return &ShardCommand{
		config:    cfg,
		storage:   st,
		scheduler: scheduler,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *ShardCommand) Execute(cmd *cobra.Command, args []string) error {
	if sc.config.Shards == 0 && sc.config.BatchSize == 0 {
		return fmt.Errorf("set --shards or --batch-size")
	}

	manifest, err := sc.storage.Load()
	if err != nil {
		return err
	}
	if len(manifest.Paths) == 0 {
		color.Yellow("Manifest is empty")
		return nil
	}

	title, prefix := "Shard", "shard"
	var lists [][]string
	if sc.config.BatchSize > 0 {
		title, prefix = "Batch", "batch"
		lists = batching.Batches(manifest.PathList(), sc.config.BatchSize)
	} else {
		lists = sc.scheduler.Schedule(manifest.PathList(), sc.config.Shards)
	}

	if !sc.config.Flags.WriteFiles {
		sc.formatter.PrintShards(title, lists, manifest.LabelOf())
		return nil
	}

	dir := filepath.Dir(sc.config.GetOutputPath())
	files, err := storage.WriteLists(dir, prefix, lists)
	if err != nil {
		return err
	}
	color.Green("✓ Wrote %d file(s) to %s", len(files), dir)
	return nil
}
