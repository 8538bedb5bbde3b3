package config

import (
	"fmt"
	"path/filepath"
)

// Config holds all configuration for one sdet run. Load resolves defaults,
// the optional config file and command-line flags exactly once; the resulting
// value is never mutated afterwards and every pipeline stage receives it
// explicitly.
type Config struct {
	// Report settings
	Product    string
	SuitesDir  string
	ReportType int

	// Output settings
	OutputDir      string
	ReportFileName string

	// Database settings
	EnvFile string

	// Console settings
	Verbose bool
	Debug   bool

	// ToolVersion is stamped into the report and the rendered pages
	ToolVersion string
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	Product    string
	SuitesDir  string
	ReportType int
	OutputDir  string
	EnvFile    string
	Verbose    bool
	Debug      bool
	NameFilter string
	ShowTests  bool
}

// ValidationError describes one rejected configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ReportType:     DefaultReportType,
		OutputDir:      DefaultOutputDir,
		ReportFileName: DefaultReportFileName,
		EnvFile:        DefaultEnvFile,
	}
}

// Resolve builds the configuration without validating it: defaults first,
// then the optional YAML config file, then flag overrides. Commands that only
// need parts of the configuration use it directly.
func Resolve(flags Flags, version string) (*Config, error) {
	cfg := New()
	cfg.ToolVersion = version

	if flags.ConfigFile != "" {
		if err := applyFile(cfg, flags.ConfigFile); err != nil {
			return nil, err
		}
	}
	applyFlags(cfg, flags)
	return cfg, nil
}

// Load resolves the full run configuration and validates it as a whole.
func Load(flags Flags, version string) (*Config, error) {
	cfg, err := Resolve(flags, version)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *Config, flags Flags) {
	if flags.Product != "" {
		cfg.Product = flags.Product
	}
	if flags.SuitesDir != "" {
		cfg.SuitesDir = flags.SuitesDir
	}
	if flags.ReportType != 0 {
		cfg.ReportType = flags.ReportType
	}
	if flags.OutputDir != "" {
		cfg.OutputDir = flags.OutputDir
	}
	if flags.EnvFile != "" {
		cfg.EnvFile = flags.EnvFile
	}
	cfg.Verbose = flags.Verbose
	cfg.Debug = flags.Debug
}

func (c *Config) validate() error {
	if c.Product == "" {
		return &ValidationError{Field: "product", Message: "product name is required"}
	}
	if c.SuitesDir == "" {
		return &ValidationError{Field: "suites-dir", Message: "suites directory is required"}
	}
	if c.ReportType < ReportTypeSummary || c.ReportType > ReportTypePersist {
		return &ValidationError{
			Field:   "report-type",
			Message: fmt.Sprintf("must be %d, %d or %d, got %d", ReportTypeSummary, ReportTypeScenario, ReportTypePersist, c.ReportType),
		}
	}
	return nil
}

// ReportPath returns the full path to the report JSON file.
// Resolves to an absolute path so generate and failures always read/write the
// same file regardless of cwd.
func (c *Config) ReportPath() string {
	p := filepath.Join(c.OutputDir, c.ReportFileName)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// ScenarioDataDir returns the directory the per-platform scenario pages are
// written to.
func (c *Config) ScenarioDataDir() string {
	return filepath.Join(c.OutputDir, ScenarioDataDirName)
}

// SummaryPagePath returns the full path of the rendered summary page.
func (c *Config) SummaryPagePath() string {
	return filepath.Join(c.OutputDir, SummaryPageName)
}
