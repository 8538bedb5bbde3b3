package domain

// SummaryRow is the flattened per-test shape consumed by the summary table
// sink. Counts are summed across platforms and PlatformIDs is a comma-joined
// list, so one row describes the whole cross-platform run of a test.
type SummaryRow struct {
	DetailInfo    string
	ExecutedTests int
	FailedTests   int
	PlatformIDs   string
	RunStatus     string
}
