package ui

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"sdet/internal/config"
	"sdet/internal/domain"
	"sdet/internal/storage"
)

// FailureViewer displays the failed tests of a report in an interactive TUI
type FailureViewer struct {
	config  *config.Config
	storage storage.Storage
}

var _ Viewer = (*FailureViewer)(nil)

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(cfg *config.Config, st storage.Storage) *FailureViewer {
	return &FailureViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays the failed tests in an interactive TUI
func (fv *FailureViewer) View(rep *domain.Report) error {
	if len(rep.Failed) == 0 {
		color.Green("✓ No failed tests in the last report!")
		color.White("report: %s", fv.config.ReportPath())
		return nil
	}

	// Track reviewed tests (by index) - loaded from the report
	reviewed := make(map[int]bool)
	for i, test := range rep.Failed {
		if test.Reviewed {
			reviewed[i] = true
		}
	}

	// Function to save review marks back into the report file
	saveReviewedStatus := func() error {
		for i := range rep.Failed {
			rep.Failed[i].Reviewed = reviewed[i]
		}
		return fv.storage.SaveReport(rep)
	}

	// Create the application
	app := tview.NewApplication()

	// Create list for failed tests (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	// Function to get formatted text for a list item
	getListItemText := func(index int) string {
		name := rep.Failed[index].Name
		if name == "" {
			name = fmt.Sprintf("Test %d", index+1)
		}

		if reviewed[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
	}

	// Function to update list item display with reviewed status
	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	// Add failed tests to the list with numbers and colors
	for i := range rep.Failed {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	// Set list colors for better visibility
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Create stats header view (shows test name and platform rollup)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	// Create text view for per-platform details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	// Create a container with right padding for the details view
	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	// Create right side layout: stats on top, details below
	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// Create simple flex layout: list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	// Count unreviewed tests
	countUnreviewed := func() int {
		count := 0
		for i := range rep.Failed {
			if !reviewed[i] {
				count++
			}
		}
		return count
	}

	// Create header text view (so we can update it)
	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	// Function to update header
	updateHeader := func() {
		headerText := fmt.Sprintf(" Failed Tests (%d total, %d unreviewed) | Use ↑↓ to navigate, [yellow]R[white] to mark reviewed, → to view details, ← to go back, Ctrl+C to exit ",
			len(rep.Failed), countUnreviewed())
		headerView.SetText(headerText)
	}

	// Set initial header
	updateHeader()

	// Update details when selection changes
	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(rep.Failed) {
			test := rep.Failed[index]
			statsView.SetText(fv.formatTestStats(test, index+1))
			detailsView.SetText(fv.formatTestDetails(test))
		}
	}

	// Set up keyboard handlers for list
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
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(rep.Failed) {
					reviewed[index] = !reviewed[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveReviewedStatus(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	// Set up keyboard handlers for details view
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

	// Update details when list selection changes
	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	// Set initial details
	updateDetails()

	// Create main layout with title
	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(
			tview.NewBox().SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
				return x, y, width, height
			}),
			1, 0, false,
		).
		AddItem(flex, 0, 1, true)

	// Run the application
	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatTestDetails formats one failed test for display using tview color
// tags ([red], [cyan], etc.)
func (fv *FailureViewer) formatTestDetails(test domain.ClassifiedTest) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", test.Name)

	platformIDs := make([]string, 0, len(test.PlatformStatus))
	for id := range test.PlatformStatus {
		platformIDs = append(platformIDs, id)
	}
	sort.Strings(platformIDs)

	for _, id := range platformIDs {
		status := test.PlatformStatus[id]
		if status == domain.StatusFailed {
			fmt.Fprintf(w, "[red]✗ %s: %s[white]\n", id, status)
		} else {
			fmt.Fprintf(w, "[green]✓ %s: %s[white]\n", id, status)
		}

		run := test.RunStatus[id]
		if run == nil {
			continue
		}
		fmt.Fprintf(w, "  total: %d\tpassed: %d\tfailed: %d\n", run.TotalTests, run.PassedTests, run.FailedTests)

		for _, line := range run.Scenarios.NotOK {
			fmt.Fprintf(w, "  [red]%s[white]\n", tview.Escape(line))
		}
		for _, line := range run.Scenarios.Skipped {
			fmt.Fprintf(w, "  [yellow]%s[white]\n", tview.Escape(line))
		}
		for _, line := range run.Scenarios.OK {
			fmt.Fprintf(w, "  [green]%s[white]\n", tview.Escape(line))
		}
		fmt.Fprintf(w, "\n")
	}

	if len(test.RunStatus) == 0 {
		fmt.Fprintf(w, "\n[gray]No scenario details in this report. Re-run generate with report type 2 or 3.[white]\n")
	}

	w.Flush()
	return builder.String()
}

// formatTestStats formats the stats header for a failed test
func (fv *FailureViewer) formatTestStats(test domain.ClassifiedTest, number int) string {
	var builder strings.Builder

	name := test.Name
	if name == "" {
		name = fmt.Sprintf("Test %d", number)
	}

	failedOn := 0
	for _, status := range test.PlatformStatus {
		if status == domain.StatusFailed {
			failedOn++
		}
	}

	statsLine := fmt.Sprintf("[cyan]test:[white] [yellow]%s[white] | [cyan]failed on:[white] [red]%d[white] of %d platform(s)",
		name, failedOn, len(test.PlatformStatus))
	builder.WriteString(statsLine)
	builder.WriteString("\n")

	return builder.String()
}
