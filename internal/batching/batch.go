package batching

import "sort"

// Batches cuts the stream into consecutive windows of size. The last window
// may be shorter. size <= 0 yields a single window.
func Batches(paths []string, size int) [][]string {
	if len(paths) == 0 {
		return nil
	}
	if size <= 0 || size >= len(paths) {
		return [][]string{paths}
	}

	batches := make([][]string, 0, (len(paths)+size-1)/size)
	for start := 0; start < len(paths); start += size {
		end := start + size
		if end > len(paths) {
			end = len(paths)
		}
		batches = append(batches, paths[start:end])
	}
	return batches
}

// LabelCount is the number of paths with a label in one window
type LabelCount struct {
	Label string
	Count int
}

// LabelMix counts labels in a window, most frequent first, ties by label
func LabelMix(batch []string, labelOf func(string) string) []LabelCount {
	counts := make(map[string]int)
	for _, p := range batch {
		counts[labelOf(p)]++
	}

	mix := make([]LabelCount, 0, len(counts))
	for label, n := range counts {
		mix = append(mix, LabelCount{Label: label, Count: n})
	}
	sort.Slice(mix, func(i, j int) bool {
		if mix[i].Count != mix[j].Count {
			return mix[i].Count > mix[j].Count
		}
		return mix[i].Label < mix[j].Label
	})
	return mix
}
