package config

import (
	"path/filepath"
	"time"

	"balpath/internal/balance"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	ScanRoot    string

	// Pre-filter settings
	Extensions []string
	Seed       int64
	MaxPaths   int

	// Balancing settings
	MaxLabels        int
	MaxPathsPerLabel int

	// Label resolver settings
	Resolver     string
	LabelPattern string
	MappingFile  string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string
	Table          string

	// Consumption settings
	Shards    int
	BatchSize int

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		ScanRoot:       DefaultScanRoot,
		Resolver:       DefaultResolver,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Table:          DefaultTable,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// ApplyFlags copies flags onto the config. changed reports whether a flag
// was set explicitly; unset flags keep file, env or default values.
func (c *Config) ApplyFlags(flags Flags, changed func(name string) bool) {
	c.Flags = flags
	if changed == nil {
		changed = func(string) bool { return true }
	}

	if changed("ext") {
		c.Extensions = flags.Extensions
	}
	if changed("seed") {
		c.Seed = flags.Seed
	}
	if changed("max-paths") {
		c.MaxPaths = flags.MaxPaths
	}
	if changed("max-labels") {
		c.MaxLabels = flags.MaxLabels
	}
	if changed("max-per-label") {
		c.MaxPathsPerLabel = flags.MaxPathsPerLabel
	}
	if changed("resolver") {
		c.Resolver = flags.Resolver
	}
	if changed("pattern") {
		c.LabelPattern = flags.LabelPattern
	}
	if changed("mapping") {
		c.MappingFile = flags.MappingFile
	}
	if changed("shards") {
		c.Shards = flags.Shards
	}
	if changed("batch-size") {
		c.BatchSize = flags.BatchSize
	}
	if changed("table") {
		c.Table = flags.Table
	}
}

// Validate rejects negative limits instead of treating them as unlimited
func (c *Config) Validate() error {
	limits := []struct {
		field string
		value int
	}{
		{"max paths", c.MaxPaths},
		{"max labels", c.MaxLabels},
		{"max paths per label", c.MaxPathsPerLabel},
		{"shards", c.Shards},
		{"batch size", c.BatchSize},
	}
	for _, l := range limits {
		if err := balance.CheckLimit(l.field, l.value); err != nil {
			return err
		}
	}
	return nil
}

// ResolveSeed returns the configured seed, picking a time based one when unset.
// The chosen seed is stored so it can be recorded in the manifest.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// GetScanRoot returns the scan root, relative to the project path unless absolute
func (c *Config) GetScanRoot() string {
	if filepath.IsAbs(c.ScanRoot) {
		return c.ScanRoot
	}
	return filepath.Join(c.ProjectPath, c.ScanRoot)
}

// GetProjectFile returns the project configuration file path, preferring the --config flag
func (c *Config) GetProjectFile() string {
	if c.Flags.ConfigFile != "" {
		return c.Flags.ConfigFile
	}
	return filepath.Join(c.ProjectPath, DefaultProjectFile)
}

// GetOutputPath returns the absolute manifest path so every command reads and writes the same file
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
