package storage

import (
	"sdet/internal/config"
	"sdet/internal/domain"
)

// Storage persists and loads generated reports (e.g. for the failures viewer).
type Storage interface {
	// SaveReport writes the full report, replacing any previous one.
	SaveReport(rep *domain.Report) error
	LoadReport() (*domain.Report, error)
}

// JSONStorage stores the report in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's report path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
