package ui

import "sdet/internal/domain"

// Viewer displays a generated report in an interactive TUI
type Viewer interface {
	View(rep *domain.Report) error
}
