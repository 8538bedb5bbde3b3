package report

import "sdet/internal/domain"

// ReduceStatus folds one more platform status into a test's overall status.
// FAILED is sticky: once any platform reported a failure, later OK results
// never flip the test back.
func ReduceStatus(current, incoming domain.Status) domain.Status {
	if current == domain.StatusFailed || incoming == domain.StatusFailed {
		return domain.StatusFailed
	}
	return domain.StatusOK
}

// NewAggregate returns an empty aggregate ready to be folded into.
func NewAggregate() domain.Aggregate {
	return make(domain.Aggregate)
}

// Fold merges one platform document's records into the aggregate. Entries are
// keyed by normalized test name; per-platform sub-results are keyed by the
// suite id each record carries, and a later record for the same (test, suite)
// pair replaces the earlier one. Fold is called once per document, in
// discovery order.
func Fold(agg domain.Aggregate, results []domain.RawResult) {
	for _, res := range results {
		status := res.Status()
		entry, ok := agg[res.TestName]
		if !ok {
			agg[res.TestName] = &domain.AggregatedTest{
				Name:      res.TestName,
				Status:    status,
				Platforms: map[string]domain.RawResult{res.SuiteID: res},
			}
			continue
		}
		entry.Platforms[res.SuiteID] = res
		entry.Status = ReduceStatus(entry.Status, status)
	}
}
