package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the canvas panel and the readout horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, canvasPanel, readout, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, canvasPanel, readout)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
