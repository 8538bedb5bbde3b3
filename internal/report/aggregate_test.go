package report

import (
	"testing"

	"sdet/internal/domain"
)

func TestReduceStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  domain.Status
		incoming domain.Status
		want     domain.Status
	}{
		{"ok stays ok", domain.StatusOK, domain.StatusOK, domain.StatusOK},
		{"new failure wins", domain.StatusOK, domain.StatusFailed, domain.StatusFailed},
		{"failure is sticky", domain.StatusFailed, domain.StatusOK, domain.StatusFailed},
		{"failure stays failed", domain.StatusFailed, domain.StatusFailed, domain.StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReduceStatus(tt.current, tt.incoming); got != tt.want {
				t.Errorf("ReduceStatus(%s, %s) = %s, want %s", tt.current, tt.incoming, got, tt.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	t.Run("creates entry for unseen test", func(t *testing.T) {
		agg := NewAggregate()
		Fold(agg, []domain.RawResult{
			{TestName: "t1.py", SuiteID: "TS-A", TotalCases: 3, FailedCases: 0},
		})

		entry, ok := agg["t1.py"]
		if !ok {
			t.Fatal("expected aggregate entry for t1.py")
		}
		if entry.Status != domain.StatusOK {
			t.Errorf("expected status %s, got %s", domain.StatusOK, entry.Status)
		}
		if len(entry.Platforms) != 1 {
			t.Errorf("expected 1 platform result, got %d", len(entry.Platforms))
		}
	})

	t.Run("merges second platform into existing entry", func(t *testing.T) {
		agg := NewAggregate()
		Fold(agg, []domain.RawResult{
			{TestName: "t1.py", SuiteID: "TS-A", TotalCases: 3, FailedCases: 0},
		})
		Fold(agg, []domain.RawResult{
			{TestName: "t1.py", SuiteID: "TS-B", TotalCases: 3, FailedCases: 0},
		})

		entry := agg["t1.py"]
		if len(entry.Platforms) != 2 {
			t.Fatalf("expected 2 platform results, got %d", len(entry.Platforms))
		}
		if entry.Status != domain.StatusOK {
			t.Errorf("expected status %s, got %s", domain.StatusOK, entry.Status)
		}
	})

	t.Run("failure on any platform marks the test failed", func(t *testing.T) {
		agg := NewAggregate()
		Fold(agg, []domain.RawResult{
			{TestName: "t1.py", SuiteID: "TS-A", TotalCases: 3, FailedCases: 1},
		})
		Fold(agg, []domain.RawResult{
			{TestName: "t1.py", SuiteID: "TS-B", TotalCases: 3, FailedCases: 0},
		})

		if got := agg["t1.py"].Status; got != domain.StatusFailed {
			t.Errorf("expected status %s, got %s", domain.StatusFailed, got)
		}
	})

	t.Run("later failure flips an ok test", func(t *testing.T) {
		agg := NewAggregate()
		Fold(agg, []domain.RawResult{
			{TestName: "t1.py", SuiteID: "TS-A", TotalCases: 3, FailedCases: 0},
		})
		Fold(agg, []domain.RawResult{
			{TestName: "t1.py", SuiteID: "TS-B", TotalCases: 3, FailedCases: 2},
		})

		if got := agg["t1.py"].Status; got != domain.StatusFailed {
			t.Errorf("expected status %s, got %s", domain.StatusFailed, got)
		}
	})

	t.Run("same suite id replaces earlier result", func(t *testing.T) {
		agg := NewAggregate()
		Fold(agg, []domain.RawResult{
			{TestName: "t1.py", SuiteID: "TS-A", TotalCases: 3, FailedCases: 0},
			{TestName: "t1.py", SuiteID: "TS-A", TotalCases: 5, FailedCases: 0},
		})

		entry := agg["t1.py"]
		if len(entry.Platforms) != 1 {
			t.Fatalf("expected 1 platform result, got %d", len(entry.Platforms))
		}
		if got := entry.Platforms["TS-A"].TotalCases; got != 5 {
			t.Errorf("expected replacement result with 5 cases, got %d", got)
		}
	})

	t.Run("different tests stay separate", func(t *testing.T) {
		agg := NewAggregate()
		Fold(agg, []domain.RawResult{
			{TestName: "t1.py", SuiteID: "TS-A", TotalCases: 1, FailedCases: 0},
			{TestName: "t2.py", SuiteID: "TS-A", TotalCases: 1, FailedCases: 1},
		})

		if len(agg) != 2 {
			t.Fatalf("expected 2 aggregate entries, got %d", len(agg))
		}
		if agg["t1.py"].Status != domain.StatusOK {
			t.Errorf("expected t1.py %s, got %s", domain.StatusOK, agg["t1.py"].Status)
		}
		if agg["t2.py"].Status != domain.StatusFailed {
			t.Errorf("expected t2.py %s, got %s", domain.StatusFailed, agg["t2.py"].Status)
		}
	})
}
