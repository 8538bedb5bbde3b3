package commands

import (
	"sdet/internal/cli"
	"sdet/internal/discovery"
	"sdet/internal/loader"
	"sdet/internal/parser"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	Failures *FailuresCommand
	Migrate  *MigrateCommand
}

// NewCommands creates all commands with shared dependencies. Anything that
// needs the resolved run configuration is built inside Execute, after the
// configuration exists.
func NewCommands(version string, flags *cli.Flags) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	docLoader := loader.NewLoader()
	tapParser := parser.NewTAPParser()

	return &Commands{
		Generate: NewGenerateCommand(version, flags, scanner, docLoader, tapParser),
		List:     NewListCommand(version, flags, scanner, docLoader, filter),
		Failures: NewFailuresCommand(version, flags),
		Migrate:  NewMigrateCommand(version, flags),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the cross-platform test report",
		Long:  "Merge per-platform result documents into one cross-platform report, render it and optionally persist summaries",
		RunE:  c.Generate.Execute,
	}
	generateCmd.Flags().StringVarP(&flags.Product, "product", "p", "", "Name of the product the report covers")
	generateCmd.Flags().StringVarP(&flags.SuitesDir, "suites-dir", "s", "", "Directory holding the per-platform result documents")
	generateCmd.Flags().IntVarP(&flags.ReportType, "report-type", "r", 0, "Report type: 1 summary page, 2 adds scenario pages, 3 adds database persistence")
	generateCmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "o", "", "Directory the report is written to")
	generateCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "Optional YAML file with report settings")
	generateCmd.Flags().StringVar(&flags.EnvFile, "env-file", "", "Path of the .env file with database settings")
	generateCmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "Print the resolved options before generating")
	generateCmd.Flags().BoolVar(&flags.Debug, "debug", false, "Validate render contexts and dump the report JSON")
	rootCmd.AddCommand(generateCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered result documents",
		Long:  "Scan the suites directory and list the platform result documents without generating a report",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.SuitesDir, "suites-dir", "s", "", "Directory holding the per-platform result documents")
	listCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "Optional YAML file with report settings")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., '*login*' or 'smoke_?.py')")
	listCmd.Flags().BoolVarP(&flags.ShowTests, "tests", "t", false, "List the tests inside each document")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failed tests interactively",
		Long:  "Display the failed tests from the last generated report in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	failuresCmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "o", "", "Directory the report was written to")
	failuresCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "Optional YAML file with report settings")
	rootCmd.AddCommand(failuresCmd)

	// Migrate command
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Prepare the summary database",
		Long:  "Create the summary database and table used by report type 3 if they do not exist yet",
		RunE:  c.Migrate.Execute,
	}
	migrateCmd.Flags().StringVar(&flags.EnvFile, "env-file", "", "Path of the .env file with database settings")
	migrateCmd.Flags().StringVarP(&flags.ConfigFile, "config", "c", "", "Optional YAML file with report settings")
	rootCmd.AddCommand(migrateCmd)
}
