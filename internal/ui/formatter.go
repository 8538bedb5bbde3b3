package ui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"sdet/internal/config"
	"sdet/internal/domain"
)

// Formatter formats and displays console output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintRunSummary displays the outcome of a generate run
func (f *Formatter) PrintRunSummary(rep *domain.Report) {
	meta := rep.Meta

	// Print header
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                     Report Generation Summary                 ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	// Print table
	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	// Product
	fmt.Printf("│ %-31s │ ", "Product")
	color.White("%-27s │\n", meta.Product)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Report Type
	fmt.Printf("│ %-31s │ ", "Report Type")
	color.White("%-27d │\n", meta.ReportType)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Platforms
	fmt.Printf("│ %-31s │ ", "Platforms")
	color.White("%-27d │\n", len(rep.AllPlatformIDs))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Total Tests
	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", meta.TotalTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Failed Tests
	fmt.Printf("│ %-31s │ ", "Failed Tests")
	color.Red("%-27d │\n", meta.FailedTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Successful Tests
	fmt.Printf("│ %-31s │ ", "Successful Tests")
	color.Green("%-27d │\n", meta.SuccessfulTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	// Generated At
	fmt.Printf("│ %-31s │ ", "Generated At")
	color.White("%-27s │\n", meta.GeneratedAt)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	color.Cyan("Platforms: %s", strings.Join(rep.AllPlatformIDs, ", "))

	// Print summary line
	fmt.Println()
	if meta.FailedTests == 0 {
		color.Green("✓ All tests passed on every platform!")
	} else {
		color.Red("✗ %d test(s) failed on at least one platform", meta.FailedTests)
		fmt.Println()
		f.printFailedTests(rep.Failed)
	}
}

// printFailedTests lists every failed test with the platforms it failed on
func (f *Formatter) printFailedTests(failed []domain.ClassifiedTest) {
	for i, test := range failed {
		var failedOn []string
		for _, platformID := range sortedStatusKeys(test.PlatformStatus) {
			if test.PlatformStatus[platformID] == domain.StatusFailed {
				failedOn = append(failedOn, platformID)
			}
		}

		connector := "├──"
		if i == len(failed)-1 {
			connector = "└──"
		}
		color.Cyan("%s %s %s", connector, test.Name, color.YellowString("[%s]", strings.Join(failedOn, ", ")))
	}
}

// PrintDocumentList prints the discovered result documents, optionally with
// the tests each one carries.
func (f *Formatter) PrintDocumentList(docs []domain.PlatformDocument, showTests bool) {
	color.Green("Found %d result document(s):\n", len(docs))

	for i, doc := range docs {
		isLastDoc := i == len(docs)-1

		if isLastDoc {
			color.Cyan("└── %s (%d tests)", doc.PlatformID, len(doc.Results))
		} else {
			color.Cyan("├── %s (%d tests)", doc.PlatformID, len(doc.Results))
		}

		if showTests {
			for j, res := range doc.Results {
				isLastTest := j == len(doc.Results)-1

				var prefix string
				if isLastDoc {
					if isLastTest {
						prefix = "    └── "
					} else {
						prefix = "    ├── "
					}
				} else {
					if isLastTest {
						prefix = "│   └── "
					} else {
						prefix = "│   ├── "
					}
				}

				failMarker := ""
				if res.Status() == domain.StatusFailed {
					failMarker = " " + color.RedString("[F]")
				}
				fmt.Printf("%s%s%s\n", prefix, color.YellowString(res.TestName), failMarker)
			}

			// Add spacing between documents (except for the last one)
			if !isLastDoc {
				fmt.Println()
			}
		}
	}
}

// PrintOptions shows the resolved run configuration, for verbose runs
func (f *Formatter) PrintOptions() {
	cfg := f.config

	color.Cyan("Options after parsing:")
	fmt.Printf("  %-13s %s\n", "product:", cfg.Product)
	fmt.Printf("  %-13s %s\n", "suites-dir:", cfg.SuitesDir)
	fmt.Printf("  %-13s %d\n", "report-type:", cfg.ReportType)
	fmt.Printf("  %-13s %s\n", "output-dir:", cfg.OutputDir)
	fmt.Printf("  %-13s %s\n", "env-file:", cfg.EnvFile)
	fmt.Printf("  %-13s %t\n", "debug:", cfg.Debug)
	fmt.Println()
}

// DumpReport prints the report as indented JSON, for debug runs
func (f *Formatter) DumpReport(rep *domain.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// sortedStatusKeys sorts platform ids for consistent output
func sortedStatusKeys(statuses map[string]domain.Status) []string {
	keys := make([]string, 0, len(statuses))
	for key := range statuses {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
