package report

import (
	"fmt"
	"sort"

	"sdet/internal/domain"
	"sdet/internal/parser"
)

// Expand fills in scenario-level detail for every test in both buckets. For
// each (test, platform) pair it pulls the raw result back out of the
// aggregate, derives the passed count from the source totals and categorizes
// the raw TAP lines. The per-test RunStatus map is created on first write and
// revisiting a platform replaces its entry.
//
// A record without scenario output aborts the expansion. Detail pages were
// promised for this report type, so an absent field means broken upstream
// data rather than a quiet run. Summary outputs produced before Expand stay
// valid either way.
func Expand(bucket *domain.ReportBucket, agg domain.Aggregate, tap *parser.TAPParser) error {
	if err := expandTests(bucket.Failed, agg, tap); err != nil {
		return err
	}
	return expandTests(bucket.Successful, agg, tap)
}

func expandTests(tests []domain.ClassifiedTest, agg domain.Aggregate, tap *parser.TAPParser) error {
	for i := range tests {
		test := &tests[i]
		for _, platformID := range sortedPlatforms(test.PlatformStatus) {
			status, err := platformRunStatus(agg, test.Name, platformID, tap)
			if err != nil {
				return err
			}
			if test.RunStatus == nil {
				test.RunStatus = make(map[string]*domain.PlatformRunStatus)
			}
			test.RunStatus[platformID] = status
		}
	}
	return nil
}

// platformRunStatus builds the detail payload for one test on one platform.
func platformRunStatus(agg domain.Aggregate, testName, platformID string, tap *parser.TAPParser) (*domain.PlatformRunStatus, error) {
	entry, ok := agg[testName]
	if !ok {
		return nil, fmt.Errorf("test %s: no aggregated entry", testName)
	}
	res, ok := entry.Platforms[platformID]
	if !ok {
		return nil, fmt.Errorf("test %s: no result recorded for platform %s", testName, platformID)
	}
	if res.Tap == nil {
		return nil, fmt.Errorf("test %s: platform %s carries no scenario output", testName, platformID)
	}

	return &domain.PlatformRunStatus{
		TotalTests:  res.TotalCases,
		PassedTests: res.TotalCases - res.FailedCases,
		FailedTests: res.FailedCases,
		Scenarios:   tap.Classify(*res.Tap),
	}, nil
}

func sortedPlatforms(statuses map[string]domain.Status) []string {
	ids := make([]string, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
