package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"sdet/internal/domain"
)

// Loader reads platform result documents and normalizes their records.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// PlatformID derives the platform identifier from a document path: the file
// name without directory and extension.
func PlatformID(docPath string) string {
	base := filepath.Base(docPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadDocument reads, validates and normalizes one result document. Any
// failure is fatal to the caller's whole run: a skipped platform document
// would silently under-report cross-platform failures.
func (l *Loader) LoadDocument(docPath string) (domain.PlatformDocument, error) {
	var doc domain.PlatformDocument

	data, err := os.ReadFile(docPath)
	if err != nil {
		return doc, fmt.Errorf("read result document %s: %w", docPath, err)
	}

	if err := ValidateDocument(data); err != nil {
		return doc, fmt.Errorf("result document %s: %w", docPath, err)
	}

	var wire domain.Document
	if err := json.Unmarshal(data, &wire); err != nil {
		return doc, fmt.Errorf("parse result document %s: %w", docPath, err)
	}
	if len(wire.Data) == 0 {
		return doc, fmt.Errorf("result document %s contains no test records", docPath)
	}

	results := make([]domain.RawResult, 0, len(wire.Data))
	for i, r := range wire.Data {
		if r.FailedCases > r.TotalCases {
			return doc, fmt.Errorf("result document %s: record %d (%s): failed count %d exceeds total %d",
				docPath, i, r.TestName, r.FailedCases, r.TotalCases)
		}
		r.TestName = baseName(r.TestName)
		results = append(results, r)
	}

	doc.PlatformID = PlatformID(docPath)
	doc.Results = results
	return doc, nil
}

// baseName strips any directory prefix from a raw test name. Suite exports
// mix both slash styles, so both count as separators. Two logically distinct
// tests that share a base name merge into one aggregated test downstream.
func baseName(name string) string {
	if name == "" {
		return ""
	}
	return path.Base(strings.ReplaceAll(name, "\\", "/"))
}
