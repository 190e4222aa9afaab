package stickfig

import "image/color"

// ColorTable maps every limb segment to its color. The mapping is identical
// for every frame of every run so downstream tools can key on it.
type ColorTable [SegmentCount]color.RGBA

// Color returns the color of segment s.
func (t ColorTable) Color(s Segment) color.RGBA {
	return t[s]
}

// DefaultColors returns the fixed segment color table.
func DefaultColors() ColorTable {
	return ColorTable{
		LeftUpperArm:  {R: 255, G: 165, B: 0, A: 255},   // orange
		LeftLowerArm:  {R: 255, G: 255, B: 0, A: 255},   // yellow
		RightUpperArm: {R: 128, G: 0, B: 128, A: 255},   // purple
		RightLowerArm: {R: 0, G: 255, B: 255, A: 255},   // cyan
		LeftUpperLeg:  {R: 0, G: 0, B: 255, A: 255},     // blue
		LeftLowerLeg:  {R: 0, G: 255, B: 0, A: 255},     // green
		RightUpperLeg: {R: 255, G: 105, B: 180, A: 255}, // hot pink
		RightLowerLeg: {R: 255, G: 0, B: 255, A: 255},   // magenta
	}
}

// DefaultLengths returns the fixed body proportions.
func DefaultLengths() LengthConfig {
	return LengthConfig{
		Torso:         120,
		UpperArm:      80,
		LowerArm:      70,
		UpperLeg:      110,
		LowerLeg:      100,
		HeadRadius:    50,
		ShoulderWidth: 30,
		HipOffset:     30,
	}
}

// Canvas and drawing constants shared by every frame.
const (
	CanvasWidth  = 1024
	CanvasHeight = 1024

	SegmentWidth = 8.0
	JointRadius  = 6.0

	LabelSize   = 200.0
	LabelMargin = 20.0
)

// DefaultRoot is the hip center of the figure, on the left of the canvas.
var DefaultRoot = Point{X: 200, Y: 500}

var (
	backgroundColor = color.RGBA{A: 255}
	torsoColor      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	headColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	jointColor      = color.RGBA{R: 255, A: 255}
	labelColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
