package report

import (
	"sort"

	"sdet/internal/domain"
)

// Classify partitions the aggregate into failed and successful buckets. Each
// entry keeps only the per-platform status strings; both buckets are sorted
// ascending by test name so the report reads the same across runs.
func Classify(agg domain.Aggregate) domain.ReportBucket {
	var bucket domain.ReportBucket
	for name, test := range agg {
		statuses := make(map[string]domain.Status, len(test.Platforms))
		for platformID, res := range test.Platforms {
			statuses[platformID] = res.Status()
		}

		entry := domain.ClassifiedTest{
			Name:           name,
			Status:         test.Status,
			PlatformStatus: statuses,
		}
		if test.Status == domain.StatusFailed {
			bucket.Failed = append(bucket.Failed, entry)
		} else {
			bucket.Successful = append(bucket.Successful, entry)
		}
	}

	sortByName(bucket.Failed)
	sortByName(bucket.Successful)
	return bucket
}

func sortByName(tests []domain.ClassifiedTest) {
	sort.Slice(tests, func(i, j int) bool {
		return tests[i].Name < tests[j].Name
	})
}
