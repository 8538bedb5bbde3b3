package report

import (
	"sort"
	"strings"

	"sdet/internal/domain"
)

// SummaryRows flattens both buckets into the per-test rows the summary table
// sink consumes, failed tests first. Executed and failed counts are summed
// across all platforms a test ran on; platform ids are sorted and joined.
func SummaryRows(bucket domain.ReportBucket, agg domain.Aggregate) []domain.SummaryRow {
	rows := make([]domain.SummaryRow, 0, len(bucket.Failed)+len(bucket.Successful))
	for _, test := range bucket.Failed {
		rows = append(rows, summaryRow(test, agg))
	}
	for _, test := range bucket.Successful {
		rows = append(rows, summaryRow(test, agg))
	}
	return rows
}

func summaryRow(test domain.ClassifiedTest, agg domain.Aggregate) domain.SummaryRow {
	ids := make([]string, 0, len(test.PlatformStatus))
	executed := 0
	failed := 0

	entry := agg[test.Name]
	for platformID := range test.PlatformStatus {
		ids = append(ids, platformID)
		if entry == nil {
			continue
		}
		if res, ok := entry.Platforms[platformID]; ok {
			executed += res.TotalCases
			failed += res.FailedCases
		}
	}
	sort.Strings(ids)

	return domain.SummaryRow{
		DetailInfo:    test.Name,
		ExecutedTests: executed,
		FailedTests:   failed,
		PlatformIDs:   strings.Join(ids, ","),
		RunStatus:     string(test.Status),
	}
}
