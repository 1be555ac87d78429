package commands

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"balpath/internal/balance"
	"balpath/internal/config"
	"balpath/internal/discovery"
	"balpath/internal/domain"
	"balpath/internal/labels"
	"balpath/internal/storage"
	"balpath/internal/ui"
)

// BalanceCommand handles the balance command
type BalanceCommand struct {
	config     *config.Config
	nameFilter *discovery.NameFilter
	storage    storage.Storage
	formatter  *ui.Formatter
}

// NewBalanceCommand creates a new BalanceCommand
func NewBalanceCommand(
	cfg *config.Config,
	nameFilter *discovery.NameFilter,
	st storage.Storage,
	formatter *ui.Formatter,
) *BalanceCommand {
	return &BalanceCommand{
		config:     cfg,
		nameFilter: nameFilter,
		storage:    st,
		formatter:  formatter,
	}
}

// Execute runs the command
func (bc *BalanceCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		bc.config.ScanRoot = args[0]
	}

	manifest, err := bc.Run()
	if err != nil {
		return err
	}
	if manifest == nil {
		return nil
	}

	if err := bc.storage.Save(manifest); err != nil {
		return fmt.Errorf("failed to save manifest: %w", err)
	}

	if bc.config.Flags.Quiet {
		bc.formatter.PrintPaths(manifest, false)
		return nil
	}
	bc.formatter.PrintSummary(manifest)
	color.White("Manifest: %s", bc.config.GetOutputPath())
	return nil
}

// Run scans the root, balances the paths and returns the manifest.
// It returns nil without error when the scan finds nothing.
func (bc *BalanceCommand) Run() (*domain.Manifest, error) {
	start := time.Now()
	root := bc.config.GetScanRoot()

	paths, err := discovery.NewScanner(bc.config.PathsToIgnore).Scan(root)
	if err != nil {
		return nil, err
	}
	paths = bc.nameFilter.FilterByName(paths, bc.config.Flags.NameFilter)
	if len(paths) == 0 {
		color.Yellow("No files found under %s", root)
		return nil, nil
	}

	resolver, err := labels.New(bc.config.Resolver, bc.config.LabelPattern, bc.config.MappingFile, root)
	if err != nil {
		return nil, err
	}

	var bar *ui.ProgressBar
	if !bc.config.Flags.Quiet {
		estimate := len(paths)
		if bc.config.MaxPaths > 0 && bc.config.MaxPaths < estimate {
			estimate = bc.config.MaxPaths
		}
		bar = ui.NewProgressBar(estimate)
		resolver = ui.NewProgressResolver(resolver, bar)
	}

	seed := bc.config.ResolveSeed()
	pre := discovery.NewRandomFilter(rand.New(rand.NewSource(seed)), bc.config.Extensions, bc.config.MaxPaths)
	balancer, err := balance.New[string](pre, resolver, balance.Options{
		MaxLabels:        bc.config.MaxLabels,
		MaxPathsPerLabel: bc.config.MaxPathsPerLabel,
	})
	if err != nil {
		return nil, err
	}

	result, err := balancer.Balance(paths)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, err
	}

	return BuildManifest(bc.config, root, len(paths), result, time.Since(start)), nil
}

// BuildManifest converts a balancing result into the persisted manifest
func BuildManifest(cfg *config.Config, root string, scanned int, res *balance.Result[string], duration time.Duration) *domain.Manifest {
	now := time.Now()
	manifest := &domain.Manifest{
		Meta: domain.ManifestMeta{
			RunID:            RunID(now, cfg.Seed),
			Root:             root,
			Resolver:         cfg.Resolver,
			Extensions:       cfg.Extensions,
			Seed:             cfg.Seed,
			MaxPaths:         cfg.MaxPaths,
			MaxLabels:        cfg.MaxLabels,
			MaxPathsPerLabel: cfg.MaxPathsPerLabel,
			ScannedPaths:     scanned,
			CandidatePaths:   res.Candidates,
			DroppedLabels:    res.DroppedLabels,
			DroppedPaths:     res.DroppedPaths,
			PerLabel:         res.PerLabel,
			TotalPaths:       len(res.Entries),
			Duration:         duration.Round(time.Millisecond).String(),
			Timestamp:        now.Format(time.RFC3339),
		},
		Labels: make([]domain.LabelSummary, 0, len(res.Groups)),
		Paths:  make([]domain.ManifestEntry, 0, len(res.Entries)),
	}

	for _, g := range res.Groups {
		manifest.Labels = append(manifest.Labels, domain.LabelSummary{
			Label:     g.Label,
			Available: g.Count,
			Selected:  res.PerLabel,
		})
	}
	for i, e := range res.Entries {
		manifest.Paths = append(manifest.Paths, domain.ManifestEntry{Position: i, Path: e.Path, Label: e.Label})
	}
	return manifest
}

// RunID identifies a balancing run by its nanosecond start time and seed
func RunID(at time.Time, seed int64) string {
	return fmt.Sprintf("%s-%d", at.UTC().Format("20060102T150405.000000000Z"), seed)
}
