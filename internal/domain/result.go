package domain

// Status is the rollup outcome of a test, either on one platform or across
// all platforms it ran on.
type Status string

const (
	StatusOK     Status = "OK"
	StatusFailed Status = "FAILED"
)

// RawResult is one per-test record from a single platform's result document.
// The field names follow the suite runner's export format.
type RawResult struct {
	TestName    string `json:"sr_test_name"`
	SuiteID     string `json:"sr_ts_id"`
	TotalCases  int    `json:"sr_test_cases"`
	FailedCases int    `json:"sr_tests_failed"`

	// Tap holds the embedded TAP-like scenario output. A nil pointer means
	// the field was absent from the document, which is not the same thing as
	// a run that produced no output.
	Tap *string `json:"sr_tap"`
}

// Status derives the per-platform status from the failed-case count.
func (r RawResult) Status() Status {
	if r.FailedCases == 0 {
		return StatusOK
	}
	return StatusFailed
}

// Document is the wire shape of one platform's result file.
type Document struct {
	Data []RawResult `json:"data"`
}

// PlatformDocument pairs a loaded document's records with the platform
// identity derived from its file name.
type PlatformDocument struct {
	PlatformID string
	Results    []RawResult
}
