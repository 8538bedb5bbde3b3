package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sdet/internal/cli"
	"sdet/internal/config"
	"sdet/internal/db"
	"sdet/internal/discovery"
	"sdet/internal/domain"
	"sdet/internal/loader"
	"sdet/internal/parser"
	"sdet/internal/render"
	"sdet/internal/report"
	"sdet/internal/storage"
	"sdet/internal/ui"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	version string
	flags   *cli.Flags
	scanner *discovery.Scanner
	loader  *loader.Loader
	parser  *parser.TAPParser
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(
	version string,
	flags *cli.Flags,
	scanner *discovery.Scanner,
	ld *loader.Loader,
	tapParser *parser.TAPParser,
) *GenerateCommand {
	return &GenerateCommand{
		version: version,
		flags:   flags,
		scanner: scanner,
		loader:  ld,
		parser:  tapParser,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	ui.Banner(gc.version)

	cfg, err := config.Load(gc.flags.ToConfigFlags(), gc.version)
	if err != nil {
		return err
	}

	formatter := ui.NewFormatter(cfg)
	if cfg.Verbose {
		formatter.PrintOptions()
	}

	// Discover result documents
	docPaths, err := gc.scanner.Scan(cfg.SuitesDir)
	if err != nil {
		return err
	}
	if len(docPaths) == 0 {
		return fmt.Errorf("no result documents to parse in directory: %s", cfg.SuitesDir)
	}

	// Load and merge every platform document, in discovery order
	agg := report.NewAggregate()
	platformIDs := make([]string, 0, len(docPaths))
	for _, path := range docPaths {
		doc, err := gc.loader.LoadDocument(path)
		if err != nil {
			return err
		}
		platformIDs = append(platformIDs, doc.PlatformID)
		report.Fold(agg, doc.Results)
	}

	bucket := report.Classify(agg)
	bucket.AllPlatformIDs = platformIDs

	rep := &domain.Report{
		Meta: domain.ReportMeta{
			Product:         cfg.Product,
			ReportType:      cfg.ReportType,
			SuitesDir:       cfg.SuitesDir,
			TotalTests:      len(bucket.Failed) + len(bucket.Successful),
			FailedTests:     len(bucket.Failed),
			SuccessfulTests: len(bucket.Successful),
			GeneratedAt:     time.Now().Format(time.RFC3339),
			ToolVersion:     cfg.ToolVersion,
		},
		ReportBucket: bucket,
	}

	// Render and persist the summary level first. Scenario expansion can
	// still fail on broken documents; what is saved up to here stays valid.
	renderer := render.NewRenderer(cfg)
	if err := renderer.WriteSummary(rep); err != nil {
		return err
	}

	st := storage.NewJSONStorage(cfg)
	if err := st.SaveReport(rep); err != nil {
		return err
	}
	color.Green("✓ Summary page generated")
	color.Yellow("Please check the output directory: %s", cfg.OutputDir)

	if cfg.ReportType >= config.ReportTypeScenario {
		if err := report.Expand(&rep.ReportBucket, agg, gc.parser); err != nil {
			return fmt.Errorf("expand scenario details: %w", err)
		}

		progressBar := ui.NewProgressBar(render.PageCount(rep), "Rendering scenario pages")
		renderer.SetProgress(progressBar)
		if _, err := renderer.WriteScenarioPages(rep); err != nil {
			return err
		}
		progressBar.Finish()

		// Save again so the report file carries the scenario details too
		if err := st.SaveReport(rep); err != nil {
			return err
		}
	}

	if cfg.ReportType == config.ReportTypePersist {
		store := db.NewSummaryStore(cfg)
		if err := store.EnsureSchema(); err != nil {
			return err
		}
		rows := report.SummaryRows(rep.ReportBucket, agg)
		if err := store.InsertSummaries(rows); err != nil {
			return err
		}
		color.Green("✓ Inserted %d summary row(s) into the database", len(rows))
	}

	formatter.PrintRunSummary(rep)

	if cfg.Debug {
		return formatter.DumpReport(rep)
	}
	return nil
}
