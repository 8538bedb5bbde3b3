package ui

import "github.com/fatih/color"

// Banner prints the tool header shown at the start of every generate run.
func Banner(version string) {
	color.Cyan("╔══════════════════════════════════════════════════════════╗")
	color.Cyan("║           SDET Cross-Platform Test Report Tool           ║")
	color.Cyan("╚══════════════════════════════════════════════════════════╝")
	color.White("version: %s\n", version)
}
