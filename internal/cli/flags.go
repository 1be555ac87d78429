package cli

import "balpath/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile       string
	Extensions       []string
	Seed             int64
	MaxPaths         int
	MaxLabels        int
	MaxPathsPerLabel int
	Resolver         string
	LabelPattern     string
	MappingFile      string
	NameFilter       string
	Shards           int
	BatchSize        int
	Table            string
	LabelsOnly       bool
	WithLabels       bool
	WriteFiles       bool
	Quiet            bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:       f.ConfigFile,
		Extensions:       f.Extensions,
		Seed:             f.Seed,
		MaxPaths:         f.MaxPaths,
		MaxLabels:        f.MaxLabels,
		MaxPathsPerLabel: f.MaxPathsPerLabel,
		Resolver:         f.Resolver,
		LabelPattern:     f.LabelPattern,
		MappingFile:      f.MappingFile,
		NameFilter:       f.NameFilter,
		Shards:           f.Shards,
		BatchSize:        f.BatchSize,
		Table:            f.Table,
		LabelsOnly:       f.LabelsOnly,
		WithLabels:       f.WithLabels,
		WriteFiles:       f.WriteFiles,
		Quiet:            f.Quiet,
	}
}
