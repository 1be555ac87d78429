package domain

// ManifestEntry is one path of the balanced stream
type ManifestEntry struct {
	Position int    `json:"position"`
	Path     string `json:"path"`
	Label    string `json:"label"`
}

// LabelSummary records how many paths a label had before and after balancing
type LabelSummary struct {
	Label     string `json:"label"`
	Available int    `json:"available"`
	Selected  int    `json:"selected"`
}

// ManifestMeta contains metadata about a balancing run
type ManifestMeta struct {
	RunID            string   `json:"run_id"`
	Root             string   `json:"root"`
	Resolver         string   `json:"resolver"`
	Extensions       []string `json:"extensions,omitempty"`
	Seed             int64    `json:"seed"`
	MaxPaths         int      `json:"max_paths"`
	MaxLabels        int      `json:"max_labels"`
	MaxPathsPerLabel int      `json:"max_paths_per_label"`
	ScannedPaths     int      `json:"scanned_paths"`
	CandidatePaths   int      `json:"candidate_paths"`
	DroppedLabels    int      `json:"dropped_labels"`
	DroppedPaths     int      `json:"dropped_paths"`
	PerLabel         int      `json:"per_label"`
	TotalPaths       int      `json:"total_paths"`
	Duration         string   `json:"duration"`
	Timestamp        string   `json:"timestamp"`
}

// Manifest is the persisted output of a balancing run
type Manifest struct {
	Meta   ManifestMeta    `json:"meta"`
	Labels []LabelSummary  `json:"labels"`
	Paths  []ManifestEntry `json:"paths"`
}

// PathList returns the ordered paths
func (m *Manifest) PathList() []string {
	paths := make([]string, len(m.Paths))
	for i, e := range m.Paths {
		paths[i] = e.Path
	}
	return paths
}

// LabelOf returns a lookup from path to label
func (m *Manifest) LabelOf() func(path string) string {
	labels := make(map[string]string, len(m.Paths))
	for _, e := range m.Paths {
		labels[e.Path] = e.Label
	}
	return func(path string) string {
		return labels[path]
	}
}

// EntriesFor returns the entries of one label in stream order
func (m *Manifest) EntriesFor(label string) []ManifestEntry {
	var entries []ManifestEntry
	for _, e := range m.Paths {
		if e.Label == label {
			entries = append(entries, e)
		}
	}
	return entries
}
