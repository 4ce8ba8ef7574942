package grid

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"unit-circle.klederson.com/internal/config"
	"unit-circle.klederson.com/internal/scene"
	"unit-circle.klederson.com/internal/trig"
)

type cell struct {
	ch    rune
	color scene.Color
	bold  bool
}

// Grid is a terminal cell surface covering the whole canvas. Each cell
// stands for a block of canvas pixels.
type Grid struct {
	cols, rows int
	sx, sy     float64 // canvas pixels per column / row
	cells      [][]cell
	bg         scene.Color
}

var _ scene.Surface = (*Grid)(nil)

// New creates a grid of cols x rows cells over the canvas.
func New(cols, rows int) *Grid {
	if cols < config.MinGridCols {
		cols = config.MinGridCols
	}
	if rows < config.MinGridRows {
		rows = config.MinGridRows
	}

	g := &Grid{
		cols:  cols,
		rows:  rows,
		sx:    scene.Canvas.X / float64(cols),
		sy:    scene.Canvas.Y / float64(rows),
		cells: make([][]cell, rows),
	}
	for i := range g.cells {
		g.cells[i] = make([]cell, cols)
	}
	return g
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// CanvasPoint maps a cell to the canvas coordinates of its centre.
func (g *Grid) CanvasPoint(col, row int) trig.Vec2 {
	return trig.V((float64(col)+0.5)*g.sx, (float64(row)+0.5)*g.sy)
}

// CellOf maps a canvas point to the cell containing it. The result may lie
// outside the grid.
func (g *Grid) CellOf(p trig.Vec2) (col, row int) {
	return int(math.Floor(p.X / g.sx)), int(math.Floor(p.Y / g.sy))
}

// At returns the character in a cell, or a space outside the grid.
func (g *Grid) At(col, row int) rune {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return ' '
	}
	if ch := g.cells[row][col].ch; ch != 0 {
		return ch
	}
	return ' '
}

func (g *Grid) set(col, row int, ch rune, c scene.Color, bold bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.cells[row][col] = cell{ch: ch, color: c, bold: bold}
}

func (g *Grid) Clear(bg scene.Color) {
	g.bg = bg
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = cell{}
		}
	}
}

func (g *Grid) Line(seg trig.Segment, c scene.Color, width float64) {
	a, b, ok := clipSegment(seg.From, seg.To, scene.Canvas.X, scene.Canvas.Y)
	if !ok {
		return
	}

	ac := trig.V(a.X/g.sx, a.Y/g.sy)
	bc := trig.V(b.X/g.sx, b.Y/g.sy)
	d := bc.Sub(ac)
	glyph := lineGlyph(b.X-a.X, b.Y-a.Y)

	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y)) * 2))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		p := ac.Add(d.Scale(float64(i) / float64(steps)))
		g.set(int(math.Floor(p.X)), int(math.Floor(p.Y)), glyph, c, width > 1)
	}
}

func (g *Grid) Circle(center trig.Vec2, radius float64, c scene.Color, width float64) {
	g.Arc(trig.Arc{Center: center, Radius: radius, Start: 0, End: trig.Tau}, c, width)
}

func (g *Grid) Arc(arc trig.Arc, c scene.Color, width float64) {
	sweep := arc.End - arc.Start
	if sweep <= 0 {
		return
	}
	// enough samples to touch every cell along the curve
	n := int(math.Ceil(sweep*arc.Radius/math.Min(g.sx, g.sy))) * 2
	if n < 8 {
		n = 8
	}
	for i := 0; i <= n; i++ {
		a := arc.Start + sweep*float64(i)/float64(n)
		p := arc.Center.Add(trig.V(arc.Radius*math.Cos(a), -arc.Radius*math.Sin(a)))
		glyph := lineGlyph(-math.Sin(a), -math.Cos(a))
		col, row := g.CellOf(p)
		g.set(col, row, glyph, c, false)
	}
}

func (g *Grid) Rect(sq trig.Square, c scene.Color, width float64) {
	tl := sq.Min
	tr := tl.Add(trig.V(sq.Side, 0))
	bl := tl.Add(trig.V(0, sq.Side))
	br := tl.Add(trig.V(sq.Side, sq.Side))
	g.Line(trig.Segment{From: tl, To: tr}, c, width)
	g.Line(trig.Segment{From: tr, To: br}, c, width)
	g.Line(trig.Segment{From: br, To: bl}, c, width)
	g.Line(trig.Segment{From: bl, To: tl}, c, width)
}

func (g *Grid) Text(t scene.Text) {
	runes := []rune(t.S)
	col0 := int(math.Round(t.Pos.X/g.sx - t.AnchorX*float64(len(runes))))
	row := int(math.Floor(t.Pos.Y/g.sy - t.AnchorY))
	for i, r := range runes {
		g.set(col0+i, row, r, t.Color, true)
	}
}

// Plain returns the grid characters without styling, one line per row.
func (g *Grid) Plain() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			sb.WriteRune(g.At(col, row))
		}
		if row < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Render returns the grid as a styled string. Runs of cells sharing a
// style are rendered together.
func (g *Grid) Render() string {
	styles := make(map[cell]lipgloss.Style)
	styleFor := func(c cell) lipgloss.Style {
		key := cell{color: c.color, bold: c.bold}
		if s, ok := styles[key]; ok {
			return s
		}
		s := lipgloss.NewStyle()
		if c.color != "" {
			s = s.Foreground(lipgloss.Color(string(c.color)))
		}
		if g.bg != "" {
			s = s.Background(lipgloss.Color(string(g.bg)))
		}
		s = s.Bold(c.bold)
		styles[key] = s
		return s
	}

	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		col := 0
		for col < g.cols {
			start := g.cells[row][col]
			var run strings.Builder
			for col < g.cols {
				cur := g.cells[row][col]
				if cur.color != start.color || cur.bold != start.bold {
					break
				}
				run.WriteRune(g.At(col, row))
				col++
			}
			if start.color == "" && g.bg == "" {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
		if row < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
