package labels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"balpath/internal/balance"
)

// Mapping labels paths from an explicit table
type Mapping struct {
	labels map[string]string
}

// mappingFile models a YAML label table:
//
//	labels:
//	  cat:
//	    - data/a.jpg
//	  dog:
//	    - data/b.jpg
type mappingFile struct {
	Labels map[string][]string `yaml:"labels"`
}

// NewMapping creates a Mapping from path -> label pairs
func NewMapping(labels map[string]string) *Mapping {
	m := make(map[string]string, len(labels))
	for p, l := range labels {
		m[p] = l
	}
	return &Mapping{labels: m}
}

// LoadMapping reads a YAML label table
func LoadMapping(file string) (*Mapping, error) {
	if file == "" {
		return nil, fmt.Errorf("mapping resolver requires a mapping file")
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}
	var mf mappingFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse mapping file %s: %w", file, err)
	}

	labels := make(map[string]string)
	for label, paths := range mf.Labels {
		for _, p := range paths {
			if prev, ok := labels[p]; ok && prev != label {
				return nil, fmt.Errorf("path %s mapped to both %s and %s", p, prev, label)
			}
			labels[p] = label
		}
	}
	return &Mapping{labels: labels}, nil
}

// Resolve looks the path up in the table
func (m *Mapping) Resolve(path string) (string, error) {
	label, ok := m.labels[path]
	if !ok {
		return "", balance.ErrUnresolvable
	}
	return label, nil
}

// Len returns the number of mapped paths
func (m *Mapping) Len() int {
	return len(m.labels)
}
