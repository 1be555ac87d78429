package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"balpath/internal/batching"
	"balpath/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to the color-aware stdout
func NewFormatter() *Formatter {
	return &Formatter{out: color.Output}
}

// SetOutput redirects the formatter
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

var (
	header = color.New(color.FgCyan)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
	warn   = color.New(color.FgYellow)
	plain  = color.New(color.FgWhite)
)

// PrintSummary prints the run statistics and the per-label table
func (f *Formatter) PrintSummary(m *domain.Manifest) {
	meta := m.Meta

	fmt.Fprintln(f.out)
	header.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	header.Fprintln(f.out, "║                    Balanced Path Selection                    ║")
	header.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Root", plain, meta.Root)
	f.row("Resolver", plain, meta.Resolver)
	f.row("Seed", plain, meta.Seed)
	f.row("Scanned Paths", plain, meta.ScannedPaths)
	f.row("Candidate Paths", plain, meta.CandidatePaths)
	f.row("Admitted Labels", good, len(m.Labels))
	f.row("Dropped Labels", bad, meta.DroppedLabels)
	f.row("Dropped Paths", bad, meta.DroppedPaths)
	f.row("Paths Per Label", good, meta.PerLabel)
	f.row("Selected Paths", good, meta.TotalPaths)
	f.row("Duration", plain, meta.Duration)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	f.PrintLabels(m)

	fmt.Fprintln(f.out)
	if meta.TotalPaths == 0 {
		warn.Fprintln(f.out, "! No paths selected")
		return
	}
	good.Fprintf(f.out, "✓ %d path(s) across %d label(s), %d per label\n", meta.TotalPaths, len(m.Labels), meta.PerLabel)
}

func (f *Formatter) row(name string, c *color.Color, value interface{}) {
	fmt.Fprintf(f.out, "│ %-31s │ ", name)
	c.Fprintf(f.out, "%-27v", value)
	fmt.Fprintln(f.out, " │")
}

// PrintLabels prints available and selected counts per label in first-seen order
func (f *Formatter) PrintLabels(m *domain.Manifest) {
	if len(m.Labels) == 0 {
		return
	}
	fmt.Fprintln(f.out)
	header.Fprintf(f.out, "%-40s %10s %10s\n", "LABEL", "AVAILABLE", "SELECTED")
	for _, l := range m.Labels {
		fmt.Fprintf(f.out, "%-40s %10d ", truncate(l.Label, 40), l.Available)
		c := good
		if l.Available > l.Selected {
			c = warn
		}
		c.Fprintf(f.out, "%10d\n", l.Selected)
	}
}

// PrintPaths prints the ordered stream, one path per line
func (f *Formatter) PrintPaths(m *domain.Manifest, withLabels bool) {
	for _, e := range m.Paths {
		if withLabels {
			fmt.Fprintf(f.out, "%s\t", header.Sprint(e.Label))
		}
		fmt.Fprintln(f.out, e.Path)
	}
}

// PrintShards prints every shard with its label mix
func (f *Formatter) PrintShards(title string, shards [][]string, labelOf func(string) string) {
	for i, shard := range shards {
		header.Fprintf(f.out, "%s %d (%d paths)", title, i+1, len(shard))
		fmt.Fprintf(f.out, "  %s\n", formatMix(batching.LabelMix(shard, labelOf)))
		for _, p := range shard {
			fmt.Fprintf(f.out, "  %s\n", p)
		}
	}
}

func formatMix(mix []batching.LabelCount) string {
	s := ""
	for i, lc := range mix {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%d", lc.Label, lc.Count)
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
