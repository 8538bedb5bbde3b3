package config

// Report types, in increasing order of work done per run.
const (
	// ReportTypeSummary renders the summary page only
	ReportTypeSummary = 1
	// ReportTypeScenario additionally renders per-platform scenario pages
	ReportTypeScenario = 2
	// ReportTypePersist additionally inserts summary rows into the database
	ReportTypePersist = 3
)

const (
	// DefaultReportType is the default report type
	DefaultReportType = ReportTypeSummary
	// DefaultOutputDir is the default output directory
	DefaultOutputDir = "output"
	// DefaultReportFileName is the default report JSON file name
	DefaultReportFileName = "sdet-report.json"
	// DefaultEnvFile is the default path of the database settings file
	DefaultEnvFile = ".env"

	// ScenarioDataDirName is the scenario pages directory, under the output dir
	ScenarioDataDirName = "tests_scenario_data"
	// SummaryPageName is the file name of the rendered summary page
	SummaryPageName = "SDET_SummaryTestReport.html"
)
