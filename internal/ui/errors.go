package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"etd/internal/domain"
)

// FailureViewer displays failed tests from a run in an interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View shows the failed and timed-out records of a run, a navigable list on
// the left and the error text of the selected test on the right.
func (fv *FailureViewer) View(result domain.RunResult) error {
	var failures []domain.TestRecord
	for _, rec := range result.Records {
		if rec.Status == domain.StatusFailed || rec.Status == domain.StatusTimedOut {
			failures = append(failures, rec)
		}
	}

	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, failure := range failures {
		name := failure.TestName
		if name == "" {
			name = fmt.Sprintf("Test %d", i+1)
		}
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, name), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(
		" Test Failures (%d) | Use ↑↓ to navigate, → to view details, ← to go back, Ctrl+C to exit ",
		len(failures),
	))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(failures) {
			failure := failures[index]
			statsView.SetText(fv.formatFailureStats(failure, index+1))
			detailsView.SetText(fv.formatFailureDetails(failure))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailureDetails formats one failed record using tview color tags
func (fv *FailureViewer) formatFailureDetails(rec domain.TestRecord) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[red]✗ Test: %s[white]\n\n", rec.TestName)
	fmt.Fprintf(&builder, "[cyan]File: %s[white]\n", rec.SourceFile)
	fmt.Fprintf(&builder, "[cyan]Status: %s[white]\n", rec.Status)
	fmt.Fprintf(&builder, "[cyan]Duration: %s[white]\n", rec.Duration)
	if rec.Retries > 0 {
		fmt.Fprintf(&builder, "[cyan]Retries: %d[white]\n", rec.Retries)
	}
	fmt.Fprintf(&builder, "\n")

	if rec.ErrorText != "" {
		fmt.Fprintf(&builder, "[yellow]Error:[white]\n%s\n", rec.ErrorText)
	}

	return builder.String()
}

// formatFailureStats formats the stats header for a failed record
func (fv *FailureViewer) formatFailureStats(rec domain.TestRecord, number int) string {
	path := rec.SourceFile
	if path == "" {
		path = "Unknown file"
	}
	name := rec.TestName
	if name == "" {
		name = fmt.Sprintf("Test %d", number)
	}
	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white] › [yellow]%s[white]\n", path, name)
}
