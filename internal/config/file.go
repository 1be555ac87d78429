package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectFile models .balpath.yaml. Missing keys leave the current value untouched.
type ProjectFile struct {
	ScanRoot         *string  `yaml:"root,omitempty"`
	Extensions       []string `yaml:"extensions,omitempty"`
	Seed             *int64   `yaml:"seed,omitempty"`
	MaxPaths         *int     `yaml:"max_paths,omitempty"`
	MaxLabels        *int     `yaml:"max_labels,omitempty"`
	MaxPathsPerLabel *int     `yaml:"max_paths_per_label,omitempty"`
	Resolver         *string  `yaml:"resolver,omitempty"`
	LabelPattern     *string  `yaml:"pattern,omitempty"`
	MappingFile      *string  `yaml:"mapping,omitempty"`
	Shards           *int     `yaml:"shards,omitempty"`
	BatchSize        *int     `yaml:"batch_size,omitempty"`
	Table            *string  `yaml:"table,omitempty"`
	Ignore           []string `yaml:"ignore,omitempty"`
}

// LoadFile applies a YAML project file. A missing file is only an error
// when required is set (the user passed --config explicitly).
func (c *Config) LoadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var pf ProjectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	c.applyFile(pf)
	return nil
}

func (c *Config) applyFile(pf ProjectFile) {
	if pf.ScanRoot != nil {
		c.ScanRoot = *pf.ScanRoot
	}
	if pf.Extensions != nil {
		c.Extensions = pf.Extensions
	}
	if pf.Seed != nil {
		c.Seed = *pf.Seed
	}
	if pf.MaxPaths != nil {
		c.MaxPaths = *pf.MaxPaths
	}
	if pf.MaxLabels != nil {
		c.MaxLabels = *pf.MaxLabels
	}
	if pf.MaxPathsPerLabel != nil {
		c.MaxPathsPerLabel = *pf.MaxPathsPerLabel
	}
	if pf.Resolver != nil {
		c.Resolver = *pf.Resolver
	}
	if pf.LabelPattern != nil {
		c.LabelPattern = *pf.LabelPattern
	}
	if pf.MappingFile != nil {
		c.MappingFile = *pf.MappingFile
	}
	if pf.Shards != nil {
		c.Shards = *pf.Shards
	}
	if pf.BatchSize != nil {
		c.BatchSize = *pf.BatchSize
	}
	if pf.Table != nil {
		c.Table = *pf.Table
	}
	if pf.Ignore != nil {
		c.PathsToIgnore = append(c.PathsToIgnore, pf.Ignore...)
	}
}
