package discovery

import (
	"math/rand"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// RandomFilter keeps paths with an accepted extension, shuffles them
// and caps the result at maxPaths
type RandomFilter struct {
	rng        *rand.Rand
	extensions []string
	maxPaths   int
}

// NewRandomFilter creates a RandomFilter. An empty extension list accepts every path,
// a nil rng keeps the input order and maxPaths 0 means unlimited.
func NewRandomFilter(rng *rand.Rand, extensions []string, maxPaths int) *RandomFilter {
	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			exts = append(exts, "."+ext)
		}
	}
	return &RandomFilter{rng: rng, extensions: exts, maxPaths: maxPaths}
}

// Accept reports whether the path carries one of the accepted extensions
func (f *RandomFilter) Accept(p string) bool {
	if len(f.extensions) == 0 {
		return true
	}
	name := strings.ToLower(baseName(p))
	for _, ext := range f.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// baseName returns the last element of a file path, or of the path
// component of a URI so queries and fragments are ignored
func baseName(p string) string {
	if u, err := url.Parse(p); err == nil && len(u.Scheme) > 1 {
		return path.Base(u.Path)
	}
	return path.Base(filepath.ToSlash(p))
}

// Filter returns a shuffled copy of the accepted paths. The input is not modified.
func (f *RandomFilter) Filter(paths []string) []string {
	shuffled := make([]string, len(paths))
	copy(shuffled, paths)
	if f.rng != nil {
		f.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
	}

	filtered := make([]string, 0, len(shuffled))
	for _, p := range shuffled {
		if f.maxPaths > 0 && len(filtered) >= f.maxPaths {
			break
		}
		if f.Accept(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
