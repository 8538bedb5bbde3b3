package cli

import "sdet/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile: f.ConfigFile,
		Product:    f.Product,
		SuitesDir:  f.SuitesDir,
		ReportType: f.ReportType,
		OutputDir:  f.OutputDir,
		EnvFile:    f.EnvFile,
		Verbose:    f.Verbose,
		Debug:      f.Debug,
		NameFilter: f.NameFilter,
		ShowTests:  f.ShowTests,
	}
}
