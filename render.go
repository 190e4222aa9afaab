package stickfig

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/gogpu/gg"

	"github.com/gogpu/stickfig/label"
)

// Renderer rasterizes skeletons into frames. It holds the label face
// resolved for the run; the geometry and colors are passed per call.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	face label.Face
}

// NewRenderer returns a renderer that draws index labels with face.
// A nil face selects the scaled bitmap font, so a requested label is
// always drawn.
func NewRenderer(face label.Face) *Renderer {
	if face == nil {
		face = label.NewBitmapFace(LabelSize)
	}
	return &Renderer{face: face}
}

// Render draws one frame: background, torso, head, the eight limb
// segments, the joint markers and, when showIndex is set, the index
// right-aligned on the canvas. Joint markers are drawn after the limbs so
// they stay visible where segments meet.
func (r *Renderer) Render(joints JointMap, lengths LengthConfig, colors ColorTable, showIndex bool, index int) (*Frame, error) {
	dc := gg.NewContext(CanvasWidth, CanvasHeight)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(gg.FromColor(backgroundColor))
	dc.SetLineWidth(SegmentWidth)

	if err := strokeLine(dc, joints[HipCenter], joints[Neck], torsoColor); err != nil {
		return nil, fmt.Errorf("torso: %w", err)
	}
	if err := fillCircle(dc, joints[HeadCenter], lengths.HeadRadius, headColor); err != nil {
		return nil, fmt.Errorf("head: %w", err)
	}
	for _, seg := range Segments() {
		from, to := seg.Endpoints()
		if err := strokeLine(dc, joints[from], joints[to], colors.Color(seg)); err != nil {
			return nil, fmt.Errorf("%s: %w", seg, err)
		}
	}
	var markerErr error
	joints.Each(func(j Joint, p Point) {
		if markerErr != nil {
			return
		}
		if err := fillCircle(dc, p, JointRadius, jointColor); err != nil {
			markerErr = fmt.Errorf("joint %s: %w", j, err)
		}
	})
	if markerErr != nil {
		return nil, markerErr
	}

	img := toRGBA(dc.Image())
	if showIndex {
		r.drawIndex(img, index)
	}
	return &Frame{Index: index, Image: img}, nil
}

func (r *Renderer) drawIndex(img *image.RGBA, index int) {
	s := strconv.Itoa(index)
	b := img.Bounds()
	x, y, precise := label.PlaceRight(r.face, s, float64(b.Dx())-LabelMargin, float64(b.Dy()))
	if !precise {
		Logger().Debug("stickfig: label placed with coarse metrics", "index", index)
	}
	r.face.Draw(img, s, x, y, labelColor)
}

func strokeLine(dc *gg.Context, a, b Point, c color.Color) error {
	dc.SetColor(c)
	dc.DrawLine(a.X, a.Y, b.X, b.Y)
	return dc.Stroke()
}

func fillCircle(dc *gg.Context, center Point, radius float64, c color.Color) error {
	dc.SetColor(c)
	dc.DrawCircle(center.X, center.Y, radius)
	return dc.Fill()
}

// toRGBA returns img as *image.RGBA, copying only when it has another type.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
