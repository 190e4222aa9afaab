package label

import (
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg/text"
)

// sourceFace is a Face backed by a scalable gg font source.
type sourceFace struct {
	source *text.FontSource
	face   text.Face
	kind   Kind
}

// NewSourceFace parses TrueType or OpenType data and returns a face of the
// given size in pixels.
func NewSourceFace(data []byte, size float64) (Face, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, err
	}
	return newSourceFace(src, size, KindEmbedded), nil
}

func newSourceFace(src *text.FontSource, size float64, kind Kind) *sourceFace {
	return &sourceFace{
		source: src,
		face:   src.Face(size),
		kind:   kind,
	}
}

func (f *sourceFace) Name() string { return f.source.Name() }
func (f *sourceFace) Kind() Kind   { return f.kind }

func (f *sourceFace) Measure(s string) (w, h float64) {
	return text.Measure(s, f.face)
}

func (f *sourceFace) Ascent() float64 {
	return f.face.Metrics().Ascent
}

func (f *sourceFace) Draw(dst draw.Image, s string, x, y float64, col color.Color) {
	text.Draw(dst, s, f.face, x, y, col)
}

// InkBounds returns the union of the glyph bounding boxes of s.
// Glyphs without outlines (spaces) do not contribute.
func (f *sourceFace) InkBounds(s string) (Rect, bool) {
	r := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	found := false
	for g := range f.face.Glyphs(s) {
		if g.Bounds.Empty() {
			continue
		}
		found = true
		r.MinX = math.Min(r.MinX, g.X+g.Bounds.MinX)
		r.MinY = math.Min(r.MinY, g.Y+g.Bounds.MinY)
		r.MaxX = math.Max(r.MaxX, g.X+g.Bounds.MaxX)
		r.MaxY = math.Max(r.MaxY, g.Y+g.Bounds.MaxY)
	}
	if !found {
		return Rect{}, false
	}
	return r, true
}

func (f *sourceFace) Close() error {
	return f.source.Close()
}
