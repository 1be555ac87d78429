package labels

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"balpath/internal/balance"
)

// Resolver kinds accepted by New
const (
	KindParent  = "parent"
	KindPattern = "pattern"
	KindMapping = "mapping"
)

// New builds a string label resolver by kind. root is the scan root the
// parent resolver labels relative to.
func New(kind, pattern, mappingFile, root string) (balance.LabelResolver[string], error) {
	switch strings.ToLower(kind) {
	case "", KindParent:
		return ParentDir{Root: root}, nil
	case KindPattern:
		return NewPattern(pattern)
	case KindMapping:
		return LoadMapping(mappingFile)
	default:
		return nil, fmt.Errorf("unknown label resolver %q (want %s, %s or %s)", kind, KindParent, KindPattern, KindMapping)
	}
}

// ParentDir labels a path by the name of its parent directory,
// e.g. "data/cat/001.jpg" -> "cat". With Root set, files directly inside
// Root have no label, however Root is spelled.
type ParentDir struct {
	Root string
}

// Resolve returns the parent directory name
func (r ParentDir) Resolve(p string) (string, error) {
	dir := r.parentDir(p)
	if dir == "" || dir == "." || dir == "/" || dir == `\` {
		return "", balance.ErrUnresolvable
	}
	return dir, nil
}

func (r ParentDir) parentDir(p string) string {
	if isURI(p) {
		u, _ := url.Parse(p)
		return path.Base(path.Dir(u.Path))
	}
	if r.Root != "" {
		if rel, err := filepath.Rel(r.Root, p); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			p = rel
		}
	}
	return filepath.Base(filepath.Dir(p))
}

// isURI reports whether p carries a scheme. Single letter schemes are
// Windows drive letters.
func isURI(p string) bool {
	u, err := url.Parse(p)
	return err == nil && len(u.Scheme) > 1
}

// Pattern labels a path with a regexp capture group. The group named
// "label" is used when present, the first group otherwise.
type Pattern struct {
	re    *regexp.Regexp
	group int
}

// NewPattern compiles expr into a Pattern resolver
func NewPattern(expr string) (*Pattern, error) {
	if expr == "" {
		return nil, fmt.Errorf("pattern resolver requires a pattern")
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile label pattern: %w", err)
	}
	if re.NumSubexp() == 0 {
		return nil, fmt.Errorf("label pattern %q has no capture group", expr)
	}
	group := re.SubexpIndex("label")
	if group < 0 {
		group = 1
	}
	return &Pattern{re: re, group: group}, nil
}

// Resolve returns the captured label
func (p *Pattern) Resolve(path string) (string, error) {
	m := p.re.FindStringSubmatch(path)
	if m == nil || m[p.group] == "" {
		return "", balance.ErrUnresolvable
	}
	return m[p.group], nil
}
