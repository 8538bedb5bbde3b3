package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sdet/internal/domain"
)

// SaveReport writes the report to the configured JSON file. The same call is
// used right after classification and again once scenario details or review
// marks are added, so the file on disk always reflects the latest state.
func (s *JSONStorage) SaveReport(rep *domain.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := s.cfg.ReportPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// LoadReport reads the last generated report from the configured JSON file.
func (s *JSONStorage) LoadReport() (*domain.Report, error) {
	path := s.cfg.ReportPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var rep domain.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &rep, nil
}
