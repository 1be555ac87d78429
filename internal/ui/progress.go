package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"balpath/internal/balance"
)

// ProgressBar creates and manages progress bars
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar
func NewProgressBar(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(color.CyanString("Resolving labels: ")+color.GreenString("[labels: 0]")),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update sets the number of resolved paths and distinct labels seen
func (p *ProgressBar) Update(done, labels int) {
	_ = p.bar.Set(done)
	p.bar.Describe(color.CyanString("Resolving labels: ") + color.GreenString("[labels: %d]", labels))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

// Progress receives resolution progress
type Progress interface {
	Update(done, labels int)
}

// ProgressResolver reports every resolved path to a Progress
type ProgressResolver struct {
	next     balance.LabelResolver[string]
	progress Progress
	done     int
	seen     map[string]struct{}
}

// NewProgressResolver wraps a resolver
func NewProgressResolver(next balance.LabelResolver[string], progress Progress) *ProgressResolver {
	return &ProgressResolver{next: next, progress: progress, seen: make(map[string]struct{})}
}

// Resolve delegates to the wrapped resolver and records progress
func (r *ProgressResolver) Resolve(path string) (string, error) {
	label, err := r.next.Resolve(path)
	if err != nil {
		return "", err
	}
	r.done++
	r.seen[label] = struct{}{}
	r.progress.Update(r.done, len(r.seen))
	return label, nil
}
