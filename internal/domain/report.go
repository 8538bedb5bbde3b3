package domain

// ScenarioSet holds the categorized scenario lines of one platform run, in
// the order they appeared in the TAP output. A line can appear in more than
// one list, e.g. a failed scenario that also carries a skip directive.
type ScenarioSet struct {
	OK      []string `json:"ok"`
	NotOK   []string `json:"not_ok"`
	Skipped []string `json:"skipped"`
}

// PlatformRunStatus is the scenario-level detail for one test on one
// platform. PassedTests always equals TotalTests minus FailedTests; the
// counts come from the source record, never from recounting scenario lines.
type PlatformRunStatus struct {
	TotalTests  int         `json:"total_tests"`
	PassedTests int         `json:"passed_tests"`
	FailedTests int         `json:"failed_tests"`
	Scenarios   ScenarioSet `json:"scenarios"`
}

// ClassifiedTest is one entry of the failed or successful bucket. RunStatus
// stays nil for summary-only reports and is filled in per platform when
// scenario detail is requested.
type ClassifiedTest struct {
	Name           string                        `json:"name"`
	Status         Status                        `json:"status"`
	PlatformStatus map[string]Status             `json:"platforms_id"`
	RunStatus      map[string]*PlatformRunStatus `json:"platforms_run_status,omitempty"`

	// Reviewed is flipped from the failures viewer and saved back with the
	// report, so triage progress survives between sessions.
	Reviewed bool `json:"reviewed,omitempty"`
}

// ReportBucket partitions all aggregated tests into failed and successful
// groups. Both slices are sorted ascending by test name; that order is part
// of the report contract and must survive the JSON round-trip.
type ReportBucket struct {
	Failed         []ClassifiedTest `json:"failed"`
	Successful     []ClassifiedTest `json:"successful"`
	AllPlatformIDs []string         `json:"all_platforms_id"`
}

// ReportMeta describes the run that produced a report.
type ReportMeta struct {
	Product         string `json:"product"`
	ReportType      int    `json:"report_type"`
	SuitesDir       string `json:"suites_dir"`
	TotalTests      int    `json:"total_tests"`
	FailedTests     int    `json:"failed_tests"`
	SuccessfulTests int    `json:"successful_tests"`
	GeneratedAt     string `json:"generated_at"`
	ToolVersion     string `json:"tool_version"`
}

// Report is the complete output of one generate run.
type Report struct {
	Meta ReportMeta `json:"meta"`
	ReportBucket
}
