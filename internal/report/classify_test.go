package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"sdet/internal/domain"
)

func TestClassify(t *testing.T) {
	agg := NewAggregate()
	Fold(agg, []domain.RawResult{
		{TestName: "zeta.py", SuiteID: "TS-A", TotalCases: 2, FailedCases: 0},
		{TestName: "alpha.py", SuiteID: "TS-A", TotalCases: 2, FailedCases: 1},
		{TestName: "mid.py", SuiteID: "TS-A", TotalCases: 2, FailedCases: 0},
	})
	Fold(agg, []domain.RawResult{
		{TestName: "zeta.py", SuiteID: "TS-B", TotalCases: 2, FailedCases: 2},
		{TestName: "alpha.py", SuiteID: "TS-B", TotalCases: 2, FailedCases: 0},
		{TestName: "beta.py", SuiteID: "TS-B", TotalCases: 1, FailedCases: 0},
	})

	bucket := Classify(agg)

	var failedNames []string
	for _, test := range bucket.Failed {
		failedNames = append(failedNames, test.Name)
	}
	if diff := cmp.Diff([]string{"alpha.py", "zeta.py"}, failedNames); diff != "" {
		t.Errorf("failed bucket mismatch (-want +got):\n%s", diff)
	}

	var successfulNames []string
	for _, test := range bucket.Successful {
		successfulNames = append(successfulNames, test.Name)
	}
	if diff := cmp.Diff([]string{"beta.py", "mid.py"}, successfulNames); diff != "" {
		t.Errorf("successful bucket mismatch (-want +got):\n%s", diff)
	}

	alpha := bucket.Failed[0]
	wantStatuses := map[string]domain.Status{
		"TS-A": domain.StatusFailed,
		"TS-B": domain.StatusOK,
	}
	if diff := cmp.Diff(wantStatuses, alpha.PlatformStatus); diff != "" {
		t.Errorf("alpha.py platform statuses mismatch (-want +got):\n%s", diff)
	}
	if alpha.RunStatus != nil {
		t.Error("expected no run status before expansion")
	}
}

func TestClassifyIdempotent(t *testing.T) {
	agg := NewAggregate()
	Fold(agg, []domain.RawResult{
		{TestName: "b.py", SuiteID: "TS-A", TotalCases: 1, FailedCases: 1},
		{TestName: "a.py", SuiteID: "TS-A", TotalCases: 1, FailedCases: 0},
	})

	first := Classify(agg)
	second := Classify(agg)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("classifying the same aggregate twice differed (-first +second):\n%s", diff)
	}
}

func TestClassifyEmptyAggregate(t *testing.T) {
	bucket := Classify(NewAggregate())
	if len(bucket.Failed) != 0 {
		t.Errorf("expected 0 failed tests, got %d", len(bucket.Failed))
	}
	if len(bucket.Successful) != 0 {
		t.Errorf("expected 0 successful tests, got %d", len(bucket.Successful))
	}
}

// A test that failed anywhere lands in the failed bucket exactly once, no
// matter how many platforms it passed on afterwards.
func TestClassifySingleMembership(t *testing.T) {
	agg := NewAggregate()
	Fold(agg, []domain.RawResult{
		{TestName: "t1.py", SuiteID: "TS-A", TotalCases: 1, FailedCases: 1},
	})
	Fold(agg, []domain.RawResult{
		{TestName: "t1.py", SuiteID: "TS-B", TotalCases: 1, FailedCases: 0},
	})
	Fold(agg, []domain.RawResult{
		{TestName: "t1.py", SuiteID: "TS-C", TotalCases: 1, FailedCases: 0},
	})

	bucket := Classify(agg)
	if len(bucket.Failed) != 1 {
		t.Fatalf("expected 1 failed test, got %d", len(bucket.Failed))
	}
	if len(bucket.Successful) != 0 {
		t.Fatalf("expected 0 successful tests, got %d", len(bucket.Successful))
	}
	if got := bucket.Failed[0].Status; got != domain.StatusFailed {
		t.Errorf("expected status %s, got %s", domain.StatusFailed, got)
	}
	if len(bucket.Failed[0].PlatformStatus) != 3 {
		t.Errorf("expected 3 platform statuses, got %d", len(bucket.Failed[0].PlatformStatus))
	}
}
