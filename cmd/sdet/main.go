package main

import (
	"fmt"
	"os"

	"sdet/internal/cli"
	"sdet/internal/cli/commands"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "sdet",
		Short:   "Cross-platform test report generator",
		Long:    `Merges per-platform automation result documents into a single cross-platform test report. Renders HTML summary and scenario pages and can persist the run summaries to a database.`,
		Version: version,
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(version, &flags)

	// Register all commands
	cmds.Register(rootCmd, &flags)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
