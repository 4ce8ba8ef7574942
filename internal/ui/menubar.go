package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"unit-circle.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, snap, radians bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"S", "nap"},
		{"R", "adians"},
		{"←/→", " radius"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	unit := "DEG"
	if radians {
		unit = "RAD"
	}
	right := onOff("SNAP", snap) + "  " + StyleStateOn.Render(unit) + " "

	left := StyleMenuKey.Render(title) + menu

	// menu bar padding takes one column each side
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).MaxHeight(1).Render(left + strings.Repeat(" ", gap) + right)
}

func onOff(name string, on bool) string {
	if on {
		return StyleStateOn.Render(name + " ON")
	}
	return StyleStateOff.Render(name + " OFF")
}
