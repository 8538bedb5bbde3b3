package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sdet/internal/cli"
	"sdet/internal/config"
	"sdet/internal/discovery"
	"sdet/internal/domain"
	"sdet/internal/loader"
	"sdet/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	version string
	flags   *cli.Flags
	scanner *discovery.Scanner
	loader  *loader.Loader
	filter  *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	version string,
	flags *cli.Flags,
	scanner *discovery.Scanner,
	ld *loader.Loader,
	filter *discovery.Filter,
) *ListCommand {
	return &ListCommand{
		version: version,
		flags:   flags,
		scanner: scanner,
		loader:  ld,
		filter:  filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(lc.flags.ToConfigFlags(), lc.version)
	if err != nil {
		return err
	}
	if cfg.SuitesDir == "" {
		return &config.ValidationError{Field: "suites-dir", Message: "suites directory is required"}
	}

	docPaths, err := lc.scanner.Scan(cfg.SuitesDir)
	if err != nil {
		return err
	}
	if len(docPaths) == 0 {
		color.Yellow("No result documents found")
		return nil
	}

	var docs []domain.PlatformDocument
	for _, path := range docPaths {
		doc, err := lc.loader.LoadDocument(path)
		if err != nil {
			return err
		}

		if lc.flags.NameFilter != "" {
			doc.Results = lc.filterResults(doc.Results)
			if len(doc.Results) == 0 {
				continue
			}
		}
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		color.Yellow("No tests match the filter")
		return nil
	}

	formatter := ui.NewFormatter(cfg)
	formatter.PrintDocumentList(docs, lc.flags.ShowTests)
	return nil
}

// filterResults keeps only the records whose test name matches the filter
func (lc *ListCommand) filterResults(results []domain.RawResult) []domain.RawResult {
	names := make([]string, 0, len(results))
	for _, res := range results {
		names = append(names, res.TestName)
	}

	kept := make(map[string]bool)
	for _, name := range lc.filter.FilterByName(names, lc.flags.NameFilter) {
		kept[name] = true
	}

	var filtered []domain.RawResult
	for _, res := range results {
		if kept[res.TestName] {
			filtered = append(filtered, res)
		}
	}
	return filtered
}
