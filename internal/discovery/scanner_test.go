package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	// Create a temporary suites directory for testing
	tmpDir, err := os.MkdirTemp("", "sdet-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Result documents plus files the scanner must ignore
	files := []string{
		"linux_x64.json",
		"win11.json",
		"macos14.json",
		"notes.txt",
		"report.html",
		".hidden.json",
	}
	for _, file := range files {
		if err := os.WriteFile(filepath.Join(tmpDir, file), []byte("{}"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	// Documents in subdirectories must not be picked up
	subDir := filepath.Join(tmpDir, "archive")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("failed to create dir %s: %v", subDir, err)
	}
	if err := os.WriteFile(filepath.Join(subDir, "old.json"), []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to create nested file: %v", err)
	}

	scanner := NewScanner()

	t.Run("finds result documents", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(results) != 3 {
			t.Errorf("expected 3 result documents, got %d", len(results))
		}
	})

	t.Run("returns sorted paths", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{
			filepath.Join(tmpDir, "linux_x64.json"),
			filepath.Join(tmpDir, "macos14.json"),
			filepath.Join(tmpDir, "win11.json"),
		}
		for i, path := range want {
			if i >= len(results) || results[i] != path {
				t.Fatalf("expected results[%d] = %s, got %v", i, path, results)
			}
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "notes.txt"))
		if err == nil {
			t.Error("expected error for file path")
		}
	})

	t.Run("empty directory yields no documents", func(t *testing.T) {
		emptyDir := filepath.Join(tmpDir, "empty")
		if err := os.MkdirAll(emptyDir, 0755); err != nil {
			t.Fatalf("failed to create empty dir: %v", err)
		}

		results, err := scanner.Scan(emptyDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected 0 documents, got %d", len(results))
		}
	})
}
