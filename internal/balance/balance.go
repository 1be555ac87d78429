package balance

import "fmt"

// LabelResolver maps a path to its label
type LabelResolver[L comparable] interface {
	Resolve(path string) (L, error)
}

// ResolverFunc adapts a plain function to LabelResolver
type ResolverFunc[L comparable] func(path string) (L, error)

// Resolve calls f(path)
func (f ResolverFunc[L]) Resolve(path string) (L, error) {
	return f(path)
}

// PreFilter is the upstream stage run before grouping (extension match, shuffle, count cap)
type PreFilter interface {
	Filter(paths []string) []string
}

// Options holds the balancing caps. Zero means unlimited.
type Options struct {
	MaxLabels        int
	MaxPathsPerLabel int
}

// Balancer groups paths by label, truncates every group to a common size
// and emits the groups interleaved in first-seen label order
type Balancer[L comparable] struct {
	pre              PreFilter
	resolver         LabelResolver[L]
	maxLabels        int
	maxPathsPerLabel int
}

// New creates a Balancer. A nil pre-filter passes paths through unchanged.
func New[L comparable](pre PreFilter, resolver LabelResolver[L], opts Options) (*Balancer[L], error) {
	if resolver == nil {
		return nil, fmt.Errorf("label resolver is required")
	}
	if err := CheckLimit("max labels", opts.MaxLabels); err != nil {
		return nil, err
	}
	if err := CheckLimit("max paths per label", opts.MaxPathsPerLabel); err != nil {
		return nil, err
	}
	return &Balancer[L]{
		pre:              pre,
		resolver:         resolver,
		maxLabels:        opts.MaxLabels,
		maxPathsPerLabel: opts.MaxPathsPerLabel,
	}, nil
}

// Entry is one output path together with its label
type Entry[L comparable] struct {
	Path  string
	Label L
}

// Group is the natural (pre-truncation) size of an admitted label
type Group[L comparable] struct {
	Label L
	Count int
}

// Result describes a balancing run
type Result[L comparable] struct {
	// Entries is the interleaved output
	Entries []Entry[L]
	// Groups lists admitted labels in first-seen order
	Groups []Group[L]
	// Candidates is the number of paths returned by the pre-filter
	Candidates int
	// DroppedLabels counts labels seen after the label cap was reached
	DroppedLabels int
	// DroppedPaths counts paths belonging to dropped labels
	DroppedPaths int
	// PerLabel is the balanced count emitted for every admitted label
	PerLabel int
}

// Paths returns the output paths in order
func (r *Result[L]) Paths() []string {
	paths := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		paths[i] = e.Path
	}
	return paths
}

// Filter returns the balanced, interleaved paths
func (b *Balancer[L]) Filter(paths []string) ([]string, error) {
	res, err := b.Balance(paths)
	if err != nil {
		return nil, err
	}
	return res.Paths(), nil
}

// Balance runs the pre-filter, groups by label and interleaves the groups
func (b *Balancer[L]) Balance(paths []string) (*Result[L], error) {
	if b.pre != nil {
		paths = b.pre.Filter(paths)
	}

	// labels keeps first-seen order, index maps a label to its slot in groups
	var labels []L
	var groups [][]string
	index := make(map[L]int)
	dropped := make(map[L]struct{})
	res := &Result[L]{Candidates: len(paths)}

	for _, path := range paths {
		label, err := b.resolver.Resolve(path)
		if err != nil {
			return nil, &ResolutionError{Path: path, Err: err}
		}
		i, ok := index[label]
		if !ok {
			if b.maxLabels > 0 && len(labels) >= b.maxLabels {
				dropped[label] = struct{}{}
				res.DroppedPaths++
				continue
			}
			i = len(labels)
			index[label] = i
			labels = append(labels, label)
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], path)
	}
	res.DroppedLabels = len(dropped)

	minCount := 0
	for i, g := range groups {
		if i == 0 || len(g) < minCount {
			minCount = len(g)
		}
		res.Groups = append(res.Groups, Group[L]{Label: labels[i], Count: len(g)})
	}
	if b.maxPathsPerLabel > 0 && minCount > b.maxPathsPerLabel {
		minCount = b.maxPathsPerLabel
	}
	res.PerLabel = minCount

	res.Entries = make([]Entry[L], 0, minCount*len(groups))
	for i := 0; i < minCount; i++ {
		for j, g := range groups {
			res.Entries = append(res.Entries, Entry[L]{Path: g[i], Label: labels[j]})
		}
	}
	return res, nil
}
