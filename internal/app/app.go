package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"unit-circle.klederson.com/internal/grid"
	"unit-circle.klederson.com/internal/logging"
	"unit-circle.klederson.com/internal/scene"
	"unit-circle.klederson.com/internal/trig"
	"unit-circle.klederson.com/internal/ui"
)

const (
	menuH     = 1
	statusH   = 1
	readoutW  = 30
	minBodyH  = 10
	minCanvas = 40
)

// shared holds state shared between the Bubble Tea model copies.
type shared struct {
	grid *grid.Grid
	log  *slog.Logger
}

// AppModel is the root Bubble Tea model. Besides the view configuration it
// keeps the pointer and the previous frame's direction, which is held when
// the pointer sits on the origin.
type AppModel struct {
	width  int
	height int

	view    scene.ViewConfig
	pointer trig.Vec2
	prev    trig.Vec2
	frame   scene.Frame
	start   []tea.Cmd

	shared *shared
}

// New creates an AppModel. The pointer starts on the origin, which
// resolves to angle 0.
func New(view scene.ViewConfig) AppModel {
	view.Radius = scene.ClampRadius(view.Radius)
	m := AppModel{
		view:    view,
		pointer: scene.Origin,
		shared: &shared{
			grid: grid.New(minCanvas, minBodyH),
			log:  logging.For("app"),
		},
	}
	m.recompute()
	return m
}

// WithPointer makes the program start with the pointer at p.
func (m AppModel) WithPointer(p trig.Vec2) AppModel {
	m.start = append(m.start, func() tea.Msg { return PointerMsg(p) })
	return m
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.start...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cols, rows := m.canvasSize()
		m.shared.grid = grid.New(cols, rows)
		return m, nil

	case tea.MouseMsg:
		col, row := m.canvasCell(msg.X, msg.Y)
		m.pointer = m.shared.grid.CanvasPoint(col, row)
		m.recompute()
		return m, nil

	case PointerMsg:
		m.pointer = trig.Vec2(msg)
		m.recompute()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c", "esc":
		return m, tea.Quit

	case "s", "S":
		m.view = m.view.ToggleSnap()
		m.shared.log.Info("snap toggled", "snap", m.view.Snap)

	case "r", "R":
		m.view = m.view.ToggleRadians()
		m.shared.log.Info("angle unit toggled", "radians", m.view.Radians)

	case "left", "h":
		m.view = m.view.Shrink()
		m.shared.log.Info("radius changed", "radius", m.view.Radius)

	case "right", "l":
		m.view = m.view.Grow()
		m.shared.log.Info("radius changed", "radius", m.view.Radius)

	default:
		return m, nil
	}

	m.recompute()
	return m, nil
}

// recompute derives the frame from scratch for the current pointer and
// view.
func (m *AppModel) recompute() {
	m.frame = scene.Compute(m.view, m.pointer, m.prev)
	m.prev = m.frame.Resolution.Raw
	if m.frame.Resolution.Degenerate {
		m.shared.log.Debug("pointer on origin, holding direction", "raw", m.prev.String())
	}
}

// canvasSize returns the grid size left for the canvas inside its border.
func (m AppModel) canvasSize() (cols, rows int) {
	bodyH := m.height - menuH - statusH
	if bodyH < minBodyH {
		bodyH = minBodyH
	}
	canvasW := m.width - readoutW
	if canvasW < minCanvas {
		canvasW = minCanvas
	}
	return canvasW - 2, bodyH - 2
}

// canvasCell converts a terminal position to a grid cell. The canvas sits
// below the menu bar inside a one-cell border.
func (m AppModel) canvasCell(x, y int) (col, row int) {
	return x - 1, y - menuH - 1
}

// Frame returns the most recently computed frame.
func (m AppModel) Frame() scene.Frame {
	return m.frame
}

// ViewConfig returns the current view configuration.
func (m AppModel) ViewConfig() scene.ViewConfig {
	return m.view
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing unit circle..."
	}

	g := m.shared.grid
	scene.Paint(g, m.frame, scene.DarkTheme)

	menuBar := ui.RenderMenuBar(m.width, m.view.Snap, m.view.Radians)
	canvas := ui.RenderCanvasPanel(g.Render(), m.frame.Resolution.Snapped)
	readout := ui.RenderReadout(scene.HUD(m.frame, scene.DarkTheme), readoutW, g.Rows()+2)
	statusBar := ui.RenderStatusBar(m.width, m.pointer, m.view.Radius,
		scene.AngleLabel(m.frame.State.Theta, m.view.Radians), m.frame.Resolution.Boundary)

	return ui.ComposeLayout(menuBar, canvas, readout, statusBar)
}
