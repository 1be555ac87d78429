package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"balpath/internal/balance"
	"balpath/internal/domain"
)

func testManifest() *domain.Manifest {
	return &domain.Manifest{
		Meta: domain.ManifestMeta{Root: "images", Resolver: "parent", Seed: 3, PerLabel: 2, TotalPaths: 4, DroppedLabels: 1, DroppedPaths: 5},
		Labels: []domain.LabelSummary{
			{Label: "cat", Available: 5, Selected: 2},
			{Label: "dog", Available: 2, Selected: 2},
		},
		Paths: []domain.ManifestEntry{
			{Position: 0, Path: "images/cat/1.jpg", Label: "cat"},
			{Position: 1, Path: "images/dog/1.jpg", Label: "dog"},
			{Position: 2, Path: "images/cat/2.jpg", Label: "cat"},
			{Position: 3, Path: "images/dog/2.jpg", Label: "dog"},
		},
	}
}

func newTestFormatter(t *testing.T) (*Formatter, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	f := NewFormatter()
	f.SetOutput(&buf)
	return f, &buf
}

func TestFormatter_PrintSummary(t *testing.T) {
	f, buf := newTestFormatter(t)
	f.PrintSummary(testManifest())
	out := buf.String()

	for _, want := range []string{"Balanced Path Selection", "Dropped Labels", "cat", "dog", "4 path(s) across 2 label(s), 2 per label"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestFormatter_PrintSummary_Empty(t *testing.T) {
	f, buf := newTestFormatter(t)
	f.PrintSummary(&domain.Manifest{})
	if !strings.Contains(buf.String(), "No paths selected") {
		t.Errorf("expected empty warning, got:\n%s", buf.String())
	}
}

func TestFormatter_PrintPaths(t *testing.T) {
	f, buf := newTestFormatter(t)
	f.PrintPaths(testManifest(), false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[1] != "images/dog/1.jpg" {
		t.Errorf("expected images/dog/1.jpg, got %s", lines[1])
	}

	buf.Reset()
	f.PrintPaths(testManifest(), true)
	if !strings.HasPrefix(buf.String(), "cat\timages/cat/1.jpg") {
		t.Errorf("expected labelled output, got:\n%s", buf.String())
	}
}

func TestFormatter_PrintShards(t *testing.T) {
	f, buf := newTestFormatter(t)
	m := testManifest()
	f.PrintShards("Shard", [][]string{m.PathList()[:2], m.PathList()[2:]}, m.LabelOf())

	out := buf.String()
	if strings.Count(out, "cat=1, dog=1") != 2 {
		t.Errorf("expected both shards to mix labels evenly:\n%s", out)
	}
}

type recordingProgress struct {
	done, labels int
}

func (r *recordingProgress) Update(done, labels int) {
	r.done, r.labels = done, labels
}

func TestProgressResolver(t *testing.T) {
	progress := &recordingProgress{}
	resolver := NewProgressResolver(balance.ResolverFunc[string](func(p string) (string, error) {
		if p == "bad" {
			return "", balance.ErrUnresolvable
		}
		return p[:1], nil
	}), progress)

	for _, p := range []string{"a1", "b1", "a2"} {
		if _, err := resolver.Resolve(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if progress.done != 3 || progress.labels != 2 {
		t.Errorf("expected 3 done / 2 labels, got %d / %d", progress.done, progress.labels)
	}

	if _, err := resolver.Resolve("bad"); !errors.Is(err, balance.ErrUnresolvable) {
		t.Errorf("expected resolver error to pass through, got %v", err)
	}
	if progress.done != 3 {
		t.Errorf("failed resolution should not count, got %d", progress.done)
	}
}

func TestManifestViewer_Formatting(t *testing.T) {
	mv := NewManifestViewer()
	m := testManifest()

	stats := mv.formatLabelStats(m.Labels[0])
	if !strings.Contains(stats, "discarded:[white] 3") {
		t.Errorf("expected discarded count in stats, got %s", stats)
	}

	paths := mv.formatLabelPaths(m.EntriesFor("dog"))
	if strings.Count(paths, "images/dog/") != 2 || strings.Contains(paths, "cat") {
		t.Errorf("unexpected path listing:\n%s", paths)
	}

	if item := mv.labelItemText(1, m.Labels[1]); !strings.Contains(item, "(2)") {
		t.Errorf("expected fully selected label marker, got %s", item)
	}
}
