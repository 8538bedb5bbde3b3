package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML config file. Only set keys override
// the defaults; flags still win over both.
type fileConfig struct {
	Product    string `yaml:"product"`
	SuitesDir  string `yaml:"suites_dir"`
	ReportType int    `yaml:"report_type"`
	OutputDir  string `yaml:"output_dir"`
	EnvFile    string `yaml:"env_file"`
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Product != "" {
		cfg.Product = fc.Product
	}
	if fc.SuitesDir != "" {
		cfg.SuitesDir = fc.SuitesDir
	}
	if fc.ReportType != 0 {
		cfg.ReportType = fc.ReportType
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}
	if fc.EnvFile != "" {
		cfg.EnvFile = fc.EnvFile
	}
	return nil
}
