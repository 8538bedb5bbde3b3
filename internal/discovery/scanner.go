package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner finds platform result documents in a suites directory.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the result documents (*.json) directly inside root, sorted by
// path. Result documents sit flat in the suites directory, one per platform,
// so the scan is deliberately non-recursive; sorting keeps document order,
// and with it column order in the report, stable across runs.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("suites directory does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("suites path is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read suites directory %s: %w", root, err)
	}

	var docs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		// Skip hidden files (starting with .)
		if strings.HasPrefix(name, ".") {
			continue
		}
		if filepath.Ext(name) == ".json" {
			docs = append(docs, filepath.Join(root, name))
		}
	}

	sort.Strings(docs)
	return docs, nil
}
