package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteLists writes each list to <dir>/<prefix>-<n>.txt, one path per line,
// and returns the written file names
func WriteLists(dir, prefix string, lists [][]string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	files := make([]string, 0, len(lists))
	for i, list := range lists {
		name := filepath.Join(dir, fmt.Sprintf("%s-%03d.txt", prefix, i+1))
		content := strings.Join(list, "\n")
		if len(list) > 0 {
			content += "\n"
		}
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			return files, fmt.Errorf("write %s: %w", name, err)
		}
		files = append(files, name)
	}
	return files, nil
}
