package report

import (
	"os"
	"path/filepath"
	"testing"

	"sdet/internal/discovery"
	"sdet/internal/domain"
	"sdet/internal/loader"
)

// Runs the real document pipeline end to end: two platform files for the
// same test, one of them failing, must land the test in the failed bucket
// with both platform results attached.
func TestPipelineTwoPlatformDocuments(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "sdet-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	docs := map[string]string{
		"A.json": `{"data": [{"sr_test_name": "t1.py", "sr_ts_id": "TS-A", "sr_test_cases": 5, "sr_tests_failed": 0}]}`,
		"B.json": `{"data": [{"sr_test_name": "t1.py", "sr_ts_id": "TS-B", "sr_test_cases": 5, "sr_tests_failed": 2}]}`,
	}
	for name, content := range docs {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}

	paths, err := discovery.NewScanner().Scan(tmpDir)
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(paths))
	}

	ld := loader.NewLoader()
	agg := NewAggregate()
	var platformIDs []string
	for _, path := range paths {
		doc, err := ld.LoadDocument(path)
		if err != nil {
			t.Fatalf("unexpected load error: %v", err)
		}
		platformIDs = append(platformIDs, doc.PlatformID)
		Fold(agg, doc.Results)
	}

	if platformIDs[0] != "A" || platformIDs[1] != "B" {
		t.Errorf("unexpected platform ids: %v", platformIDs)
	}

	entry, ok := agg["t1.py"]
	if !ok {
		t.Fatal("expected aggregate entry for t1.py")
	}
	if entry.Status != domain.StatusFailed {
		t.Errorf("expected status %s, got %s", domain.StatusFailed, entry.Status)
	}
	if len(entry.Platforms) != 2 {
		t.Errorf("expected 2 platform results, got %d", len(entry.Platforms))
	}

	bucket := Classify(agg)
	if len(bucket.Failed) != 1 || bucket.Failed[0].Name != "t1.py" {
		t.Fatalf("expected t1.py in the failed bucket, got %+v", bucket.Failed)
	}
	if len(bucket.Successful) != 0 {
		t.Errorf("expected empty successful bucket, got %d entries", len(bucket.Successful))
	}
}
