package scene

import "unit-circle.klederson.com/internal/trig"

// Color is a hex color such as "#FF6600".
type Color string

// TextSize selects one of the three label fonts.
type TextSize int

const (
	SizeLabel TextSize = iota
	SizeValue
	SizeQuadrant
)

// Text is a label placed by an anchor: (0, 0) puts the top-left corner at
// Pos, (0.5, 0.5) centres it, (1, 1) puts the bottom-right corner there.
type Text struct {
	Pos     trig.Vec2
	S       string
	Color   Color
	Size    TextSize
	AnchorX float64
	AnchorY float64
}

// Surface is a drawing target in canvas pixel coordinates (y down).
type Surface interface {
	Clear(bg Color)
	Line(seg trig.Segment, c Color, width float64)
	Circle(center trig.Vec2, radius float64, c Color, width float64)
	Arc(arc trig.Arc, c Color, width float64)
	Rect(sq trig.Square, c Color, width float64)
	Text(t Text)
}

// Theme assigns colors to every element of the picture.
type Theme struct {
	Background Color
	Ink        Color // Radius, marker, main text
	Muted      Color // Circle, axes, disabled toggles
	CosSin     Color
	Sec        Color
	Tan        Color
	Csc        Color
	Cot        Color
	Quadrant   Color
}

// LightTheme is black ink on white, used for image export.
var LightTheme = Theme{
	Background: "#FFFFFF",
	Ink:        "#000000",
	Muted:      "#B4B4B4",
	CosSin:     "#FF6600",
	Sec:        "#0066FF",
	Tan:        "#FF0066",
	Csc:        "#FF0000",
	Cot:        "#00CC00",
	Quadrant:   "#FF0000",
}

// DarkTheme suits a terminal with a dark background.
var DarkTheme = Theme{
	Background: "",
	Ink:        "#E0E0E0",
	Muted:      "#5A5A5A",
	CosSin:     "#FF8833",
	Sec:        "#3388FF",
	Tan:        "#FF3388",
	Csc:        "#FF3300",
	Cot:        "#00FF41",
	Quadrant:   "#AA3333",
}
