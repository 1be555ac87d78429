package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"balpath/internal/balance"
)

func TestConfig_GetScanRoot(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default root",
			config:   &Config{ProjectPath: ".", ScanRoot: "."},
			expected: ".",
		},
		{
			name:     "relative root",
			config:   &Config{ProjectPath: "/project", ScanRoot: "images"},
			expected: "/project/images",
		},
		{
			name:     "absolute root",
			config:   &Config{ProjectPath: "/project", ScanRoot: "/absolute/path"},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetScanRoot()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.Resolver != DefaultResolver {
		t.Errorf("expected Resolver %s, got %s", DefaultResolver, cfg.Resolver)
	}
	if cfg.MaxPaths != 0 || cfg.MaxLabels != 0 || cfg.MaxPathsPerLabel != 0 {
		t.Errorf("expected unlimited caps by default, got %d/%d/%d", cfg.MaxPaths, cfg.MaxLabels, cfg.MaxPathsPerLabel)
	}
	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		apply func(c *Config)
		field string
	}{
		{name: "valid defaults", apply: func(c *Config) {}},
		{name: "negative max paths", apply: func(c *Config) { c.MaxPaths = -1 }, field: "max paths"},
		{name: "negative max labels", apply: func(c *Config) { c.MaxLabels = -2 }, field: "max labels"},
		{name: "negative max per label", apply: func(c *Config) { c.MaxPathsPerLabel = -1 }, field: "max paths per label"},
		{name: "negative shards", apply: func(c *Config) { c.Shards = -4 }, field: "shards"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.apply(cfg)
			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var cfgErr *balance.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigurationError, got %v", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, cfgErr.Field)
			}
		})
	}
}

func TestConfig_ApplyFlags(t *testing.T) {
	cfg := New()
	cfg.MaxLabels = 5
	cfg.Resolver = "pattern"

	flags := Flags{MaxPaths: 100, MaxLabels: 0, Resolver: "parent", Extensions: []string{"jpg"}}
	changed := map[string]bool{"max-paths": true, "ext": true}
	cfg.ApplyFlags(flags, func(name string) bool { return changed[name] })

	if cfg.MaxPaths != 100 {
		t.Errorf("expected MaxPaths 100, got %d", cfg.MaxPaths)
	}
	if cfg.MaxLabels != 5 {
		t.Errorf("expected unchanged MaxLabels 5, got %d", cfg.MaxLabels)
	}
	if cfg.Resolver != "pattern" {
		t.Errorf("expected unchanged resolver pattern, got %s", cfg.Resolver)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != "jpg" {
		t.Errorf("expected extensions [jpg], got %v", cfg.Extensions)
	}
}

func TestConfig_LoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, DefaultProjectFile)
	content := `root: images
extensions: [jpg, png]
seed: 42
max_labels: 3
max_paths_per_label: 10
resolver: pattern
pattern: '/(\w+)/[^/]+$'
ignore: [tmp]
`
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := New()
	cfg.MaxPaths = 7
	if err := cfg.LoadFile(file, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ScanRoot != "images" {
		t.Errorf("expected root images, got %s", cfg.ScanRoot)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.MaxPaths != 7 {
		t.Errorf("expected MaxPaths to stay 7, got %d", cfg.MaxPaths)
	}
	if cfg.MaxLabels != 3 || cfg.MaxPathsPerLabel != 10 {
		t.Errorf("expected caps 3/10, got %d/%d", cfg.MaxLabels, cfg.MaxPathsPerLabel)
	}
	if cfg.Resolver != "pattern" || cfg.LabelPattern != `/(\w+)/[^/]+$` {
		t.Errorf("unexpected resolver settings %s %s", cfg.Resolver, cfg.LabelPattern)
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("expected 2 extensions, got %v", cfg.Extensions)
	}
	if cfg.PathsToIgnore[len(cfg.PathsToIgnore)-1] != "tmp" {
		t.Errorf("expected tmp appended to ignore list, got %v", cfg.PathsToIgnore)
	}

	t.Run("missing optional file", func(t *testing.T) {
		if err := New().LoadFile(filepath.Join(dir, "missing.yaml"), false); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing required file", func(t *testing.T) {
		if err := New().LoadFile(filepath.Join(dir, "missing.yaml"), true); err == nil {
			t.Error("expected error for missing required file")
		}
	})
}

func TestConfig_LoadEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BALPATH_SEED=1234\nDB_DATABASE=datasets\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Setenv(SeedEnv, "")
	t.Setenv("DB_DATABASE", "")
	os.Unsetenv(SeedEnv)
	os.Unsetenv("DB_DATABASE")

	cfg := New()
	cfg.ProjectPath = dir
	if err := cfg.LoadEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Seed)
	}
	if db := cfg.GetDatabase(); db.Name != "datasets" {
		t.Errorf("expected database datasets, got %s", db.Name)
	}

	t.Run("invalid seed", func(t *testing.T) {
		t.Setenv(SeedEnv, "abc")
		if err := New().LoadEnv(); err == nil {
			t.Error("expected error for invalid seed")
		}
	})
}

func TestConfig_LoadEnv_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BALPATH_SEED='1234\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg := New()
	cfg.ProjectPath = dir
	if err := cfg.LoadEnv(); err == nil {
		t.Error("expected error for malformed .env")
	}

	t.Run("missing .env is fine", func(t *testing.T) {
		cfg := New()
		cfg.ProjectPath = t.TempDir()
		if err := cfg.LoadEnv(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestConfig_ResolveSeed(t *testing.T) {
	cfg := New()
	cfg.Seed = 99
	if seed := cfg.ResolveSeed(); seed != 99 {
		t.Errorf("expected seed 99, got %d", seed)
	}

	cfg.Seed = 0
	seed := cfg.ResolveSeed()
	if seed == 0 || cfg.Seed != seed {
		t.Errorf("expected generated seed to be stored, got %d / %d", seed, cfg.Seed)
	}
}
