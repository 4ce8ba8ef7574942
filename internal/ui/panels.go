package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"unit-circle.klederson.com/internal/scene"
)

// RenderCanvasPanel wraps the drawn canvas with a border. The canvas is
// rendered by the caller so that ui stays free of drawing code.
func RenderCanvasPanel(canvas string, active bool) string {
	if active {
		return StylePanelActive.Render(canvas)
	}
	return StylePanelBorder.Render(canvas)
}

// RenderReadout renders the readout lines in their colors, padded to the
// panel height.
func RenderReadout(lines []scene.Label, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	out := []string{
		StylePanelTitle.Render("VALUES"),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
	}
	for _, l := range lines {
		sty := lipgloss.NewStyle().Foreground(lipgloss.Color(string(l.Color)))
		out = append(out, " "+sty.Render(truncate(l.S, innerW-1)))
	}

	out = append(out, "", StyleHelp.Render(" move the mouse"))

	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}
	if len(out) > innerH {
		out = out[:innerH]
	}
	for len(out) < innerH {
		out = append(out, "")
	}

	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(out, "\n"))
}

func truncate(s string, w int) string {
	r := []rune(s)
	if w < 0 {
		w = 0
	}
	if len(r) > w {
		return string(r[:w])
	}
	return s
}
