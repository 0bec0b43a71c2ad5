package ui

import "etd/internal/domain"

// Viewer displays test results in an interactive TUI
type Viewer interface {
	View(result domain.RunResult) error
}
