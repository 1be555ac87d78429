package commands

import (
	"github.com/spf13/cobra"

	"balpath/internal/batching"
	"balpath/internal/cli"
	"balpath/internal/config"
	"balpath/internal/discovery"
	"balpath/internal/storage"
	"balpath/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Balance *BalanceCommand
	List    *ListCommand
	Shard   *ShardCommand
	View    *ViewCommand
	Export  *ExportCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	nameFilter := discovery.NewNameFilter()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	scheduler := batching.NewRoundRobinScheduler()
	viewer := ui.NewManifestViewer()

	return &Commands{
		Balance: NewBalanceCommand(cfg, nameFilter, jsonStorage, formatter),
		List:    NewListCommand(cfg, jsonStorage, formatter),
		Shard:   NewShardCommand(cfg, jsonStorage, scheduler, formatter),
		View:    NewViewCommand(cfg, jsonStorage, viewer),
		Export:  NewExportCommand(cfg, jsonStorage),
	}
}

// prepare layers the project file, .env and explicit flags over the defaults
func prepare(cfg *config.Config, flags *cli.Flags) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		if err := cfg.LoadFile(cfg.GetProjectFile(), flags.ConfigFile != ""); err != nil {
			return err
		}
		if err := cfg.LoadEnv(); err != nil {
			return err
		}
		cfg.ApplyFlags(flags.ToConfigFlags(), cmd.Flags().Changed)
		return cfg.Validate()
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a YAML project file (default ./"+config.DefaultProjectFile+")")

	// Balance command
	balanceCmd := &cobra.Command{
		Use:   "balance [root]",
		Short: "Select a label-balanced, interleaved path list",
		Long: `Scan a directory, keep files with the given extensions, shuffle them, label every path
and emit the same number of paths per label in round-robin label order.`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Balance.Execute,
		PreRunE: prepare(cfg, flags),
	}
	balanceCmd.Flags().StringSliceVarP(&flags.Extensions, "ext", "e", nil, "Accepted file extensions, e.g. jpg,png (default all)")
	balanceCmd.Flags().Int64VarP(&flags.Seed, "seed", "s", 0, "Shuffle seed (0 picks one and records it in the manifest)")
	balanceCmd.Flags().IntVar(&flags.MaxPaths, "max-paths", 0, "Max paths kept after shuffling (0 = unlimited)")
	balanceCmd.Flags().IntVar(&flags.MaxLabels, "max-labels", 0, "Max distinct labels admitted, first seen first (0 = unlimited)")
	balanceCmd.Flags().IntVar(&flags.MaxPathsPerLabel, "max-per-label", 0, "Max paths emitted per label (0 = unlimited)")
	balanceCmd.Flags().StringVarP(&flags.Resolver, "resolver", "r", config.DefaultResolver, "Label resolver: parent, pattern or mapping")
	balanceCmd.Flags().StringVar(&flags.LabelPattern, "pattern", "", "Regexp with a capture group (or (?P<label>...)) for the pattern resolver")
	balanceCmd.Flags().StringVar(&flags.MappingFile, "mapping", "", "YAML label table for the mapping resolver")
	balanceCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter files by name pattern (supports wildcards, e.g., '*.jpg' or '*cat*')")
	balanceCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Print only the selected paths")
	rootCmd.AddCommand(balanceCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "Print the saved path list",
		Long:    "Print the balanced path list of the last run in stream order",
		RunE:    c.List.Execute,
		PreRunE: prepare(cfg, flags),
	}
	listCmd.Flags().BoolVar(&flags.LabelsOnly, "labels", false, "Print the per-label summary instead of paths")
	listCmd.Flags().BoolVarP(&flags.WithLabels, "with-labels", "l", false, "Prefix every path with its label")
	rootCmd.AddCommand(listCmd)

	// Shard command
	shardCmd := &cobra.Command{
		Use:     "shard",
		Short:   "Split the saved path list for consumers",
		Long:    "Deal the saved path list round-robin across shards, or cut it into consecutive batches",
		RunE:    c.Shard.Execute,
		PreRunE: prepare(cfg, flags),
	}
	shardCmd.Flags().IntVarP(&flags.Shards, "shards", "n", 0, "Number of round-robin shards")
	shardCmd.Flags().IntVar(&flags.BatchSize, "batch-size", 0, "Cut consecutive batches of this size instead of shards")
	shardCmd.Flags().BoolVarP(&flags.WriteFiles, "write", "w", false, "Write one list file per shard next to the manifest")
	rootCmd.AddCommand(shardCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view",
		Short:   "Browse the saved path list interactively",
		Long:    "Display the last manifest label by label in an interactive viewer",
		RunE:    c.View.Execute,
		PreRunE: prepare(cfg, flags),
	}
	rootCmd.AddCommand(viewCmd)

	// Export command
	exportCmd := &cobra.Command{
		Use:     "export",
		Short:   "Export the saved path list to MySQL",
		Long:    "Insert the last manifest into a MySQL table using DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD and DB_DATABASE",
		RunE:    c.Export.Execute,
		PreRunE: prepare(cfg, flags),
	}
	exportCmd.Flags().StringVar(&flags.Table, "table", config.DefaultTable, "Target table name")
	rootCmd.AddCommand(exportCmd)
}
