package raster

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"unit-circle.klederson.com/internal/config"
	"unit-circle.klederson.com/internal/logging"
	"unit-circle.klederson.com/internal/scene"
	"unit-circle.klederson.com/internal/trig"
)

// Surface draws onto a canvas-sized gg context.
type Surface struct {
	dc    *gg.Context
	font  *text.FontSource
	faces map[scene.TextSize]text.Face
}

var _ scene.Surface = (*Surface)(nil)

// New creates a surface the size of the canvas with the Go Regular font
// loaded for labels.
func New() (*Surface, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}

	s := &Surface{
		dc:   gg.NewContext(int(scene.Canvas.X), int(scene.Canvas.Y)),
		font: src,
		faces: map[scene.TextSize]text.Face{
			scene.SizeLabel:    src.Face(config.LabelSize),
			scene.SizeValue:    src.Face(config.ValueSize),
			scene.SizeQuadrant: src.Face(config.QuadrantSize),
		},
	}
	return s, nil
}

// Close releases the font and the drawing context.
func (s *Surface) Close() error {
	ferr := s.font.Close()
	if err := s.dc.Close(); err != nil {
		return err
	}
	return ferr
}

func (s *Surface) setColor(c scene.Color) {
	s.dc.SetColor(gg.Hex(string(c)).Color())
}

func (s *Surface) stroke(c scene.Color, width float64) {
	s.setColor(c)
	s.dc.SetLineWidth(width)
	if err := s.dc.Stroke(); err != nil {
		logging.For("raster").Warn("stroke failed", "err", err)
	}
}

func (s *Surface) Clear(bg scene.Color) {
	if bg == "" {
		bg = scene.LightTheme.Background
	}
	s.dc.ClearWithColor(gg.Hex(string(bg)))
}

func (s *Surface) Line(seg trig.Segment, c scene.Color, width float64) {
	s.dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
	s.stroke(c, width)
}

func (s *Surface) Circle(center trig.Vec2, radius float64, c scene.Color, width float64) {
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.stroke(c, width)
}

// Arc strokes a counter-clockwise arc. The context has y down, so the
// angles are mirrored.
func (s *Surface) Arc(arc trig.Arc, c scene.Color, width float64) {
	if arc.End <= arc.Start {
		return
	}
	s.dc.ClearPath()
	s.dc.DrawArc(arc.Center.X, arc.Center.Y, arc.Radius, -arc.End, -arc.Start)
	s.stroke(c, width)
}

func (s *Surface) Rect(sq trig.Square, c scene.Color, width float64) {
	s.dc.DrawRectangle(sq.Min.X, sq.Min.Y, sq.Side, sq.Side)
	s.stroke(c, width)
}

func (s *Surface) Text(t scene.Text) {
	face, ok := s.faces[t.Size]
	if !ok {
		face = s.faces[scene.SizeLabel]
	}
	s.dc.SetFont(face)
	s.setColor(t.Color)
	s.dc.DrawStringAnchored(t.S, t.Pos.X, t.Pos.Y, t.AnchorX, t.AnchorY)
}

// WritePNG encodes the current picture.
func (s *Surface) WritePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Encode paints a full frame with its readout and writes it to w as PNG.
func Encode(f scene.Frame, w io.Writer) error {
	s, err := New()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	scene.Paint(s, f, scene.LightTheme)
	scene.PaintHUD(s, f, scene.LightTheme)

	if err := s.WritePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Export encodes a frame into the file at path.
func Export(f scene.Frame, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := Encode(f, out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	logging.For("raster").Info("frame exported", "path", path, "theta", f.State.Theta)
	return nil
}
