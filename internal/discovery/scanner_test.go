package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{
		"cat/001.jpg",
		"cat/002.jpg",
		"dog/001.jpg",
		"dog/notes.txt",
		"cache/skip.jpg",
		".git/objects/abc",
		"cat/.DS_Store",
	}
	for _, file := range files {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("data"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"cache"})

	t.Run("scans files in walk order", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := []string{
			filepath.Join(tmpDir, "cat/001.jpg"),
			filepath.Join(tmpDir, "cat/002.jpg"),
			filepath.Join(tmpDir, "dog/001.jpg"),
			filepath.Join(tmpDir, "dog/notes.txt"),
		}
		if len(results) != len(expected) {
			t.Fatalf("expected %d files, got %d: %v", len(expected), len(results), results)
		}
		for i := range expected {
			if results[i] != expected[i] {
				t.Errorf("expected %s at %d, got %s", expected[i], i, results[i])
			}
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "cat/001.jpg"))
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}
