package config

const (
	// Canvas
	CanvasWidth  = 1000.0 // Canvas width in pixels
	CanvasHeight = 600.0  // Canvas height in pixels

	// Unit circle
	DefaultRadius = 200 // Starting circle radius in pixels
	MinRadius     = 100
	MaxRadius     = 300
	RadiusStep    = 5 // Arrow key increment

	SnapThresholdDeg = 6.0  // Snap to an axis point within this many degrees
	ArcDiameter      = 80.0 // Angle arc / right-angle marker size

	// Stroke widths
	CircleWidth  = 2.0
	SegmentWidth = 2.0
	AxisWidth    = 1.0

	// Text sizes (points) for labels, values and quadrant numerals
	LabelSize    = 15.0
	ValueSize    = 18.0
	QuadrantSize = 22.0

	// Terminal
	MinGridCols = 20
	MinGridRows = 8

	// App
	AppName    = "UNIT-CIRCLE"
	AppVersion = "1.0"
	AppAuthor  = "ctrl-empress"
)
