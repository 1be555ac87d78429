package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"balpath/internal/domain"
)

// Viewer displays a manifest in an interactive TUI
type Viewer interface {
	View(manifest *domain.Manifest) error
}

// ManifestViewer browses a manifest label by label
type ManifestViewer struct{}

// NewManifestViewer creates a new ManifestViewer
func NewManifestViewer() *ManifestViewer {
	return &ManifestViewer{}
}

// View opens the label browser: labels on the left, the selected label's paths on the right
func (mv *ManifestViewer) View(manifest *domain.Manifest) error {
	if len(manifest.Paths) == 0 {
		color.Yellow("Manifest is empty")
		return nil
	}

	app := tview.NewApplication()

	labels := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, l := range manifest.Labels {
		labels.AddItem(mv.labelItemText(i, l), "", 0, nil)
	}
	labels.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	pathsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetScrollable(true)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(pathsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(labels, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %d paths, %d labels, %d per label, seed %d | ↑↓ select label, → view paths, ← back, q to exit ",
			manifest.Meta.TotalPaths, len(manifest.Labels), manifest.Meta.PerLabel, manifest.Meta.Seed))

	updateDetails := func() {
		index := labels.GetCurrentItem()
		if index < 0 || index >= len(manifest.Labels) {
			return
		}
		summary := manifest.Labels[index]
		statsView.SetText(mv.formatLabelStats(summary))
		pathsView.SetText(mv.formatLabelPaths(manifest.EntriesFor(summary.Label)))
		pathsView.ScrollToBeginning()
	}

	labels.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(pathsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	pathsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(labels)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	labels.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(labels).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func (mv *ManifestViewer) labelItemText(index int, l domain.LabelSummary) string {
	if l.Available > l.Selected {
		return fmt.Sprintf("[yellow]%d.[white] %s [gray](%d/%d)[white]", index+1, tview.Escape(l.Label), l.Selected, l.Available)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s [green](%d)[white]", index+1, tview.Escape(l.Label), l.Selected)
}

// formatLabelStats formats the header above the path list using tview color tags
func (mv *ManifestViewer) formatLabelStats(l domain.LabelSummary) string {
	return fmt.Sprintf("[cyan]label:[white] [yellow]%s[white]  [cyan]selected:[white] %d  [cyan]available:[white] %d  [cyan]discarded:[white] %d\n",
		tview.Escape(l.Label), l.Selected, l.Available, l.Available-l.Selected)
}

// formatLabelPaths lists a label's entries with their stream positions
func (mv *ManifestViewer) formatLabelPaths(entries []domain.ManifestEntry) string {
	var builder strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&builder, "[gray]%6d[white]  %s\n", e.Position, tview.Escape(e.Path))
	}
	return builder.String()
}
