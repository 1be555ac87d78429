package domain

import (
	"testing"
)

func TestManifest_Helpers(t *testing.T) {
	m := &Manifest{
		Paths: []ManifestEntry{
			{Position: 0, Path: "cat/1.jpg", Label: "cat"},
			{Position: 1, Path: "dog/1.jpg", Label: "dog"},
			{Position: 2, Path: "cat/2.jpg", Label: "cat"},
			{Position: 3, Path: "dog/2.jpg", Label: "dog"},
		},
	}

	paths := m.PathList()
	if len(paths) != 4 || paths[2] != "cat/2.jpg" {
		t.Errorf("unexpected path list %v", paths)
	}

	labelOf := m.LabelOf()
	if labelOf("dog/2.jpg") != "dog" {
		t.Errorf("expected dog, got %s", labelOf("dog/2.jpg"))
	}
	if labelOf("missing.jpg") != "" {
		t.Errorf("expected empty label for unknown path")
	}

	cats := m.EntriesFor("cat")
	if len(cats) != 2 || cats[1].Position != 2 {
		t.Errorf("unexpected cat entries %v", cats)
	}
}
