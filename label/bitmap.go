package label

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// bitmapFace draws the 7x13 bitmap font magnified by an integer factor.
type bitmapFace struct {
	face  font.Face
	scale int
}

// NewBitmapFace returns the built-in bitmap face scaled so that its line
// height approximates size pixels. It never fails.
func NewBitmapFace(size float64) Face {
	face := basicfont.Face7x13
	scale := int(math.Round(size / float64(face.Metrics().Height.Ceil())))
	if scale < 1 {
		scale = 1
	}
	return &bitmapFace{face: face, scale: scale}
}

func (f *bitmapFace) Name() string { return "basicfont 7x13" }
func (f *bitmapFace) Kind() Kind   { return KindBitmap }

func (f *bitmapFace) Measure(s string) (w, h float64) {
	m := f.face.Metrics()
	adv := font.MeasureString(f.face, s)
	return fixedToFloat(adv) * float64(f.scale),
		float64((m.Ascent + m.Descent).Ceil() * f.scale)
}

func (f *bitmapFace) Ascent() float64 {
	return float64(f.face.Metrics().Ascent.Ceil() * f.scale)
}

// InkBounds scales the bitmap glyph cells of s.
func (f *bitmapFace) InkBounds(s string) (Rect, bool) {
	b, _ := font.BoundString(f.face, s)
	if b.Empty() {
		return Rect{}, false
	}
	k := float64(f.scale)
	return Rect{
		MinX: fixedToFloat(b.Min.X) * k,
		MinY: fixedToFloat(b.Min.Y) * k,
		MaxX: fixedToFloat(b.Max.X) * k,
		MaxY: fixedToFloat(b.Max.Y) * k,
	}, true
}

// Draw renders s at native size into an alpha mask, magnifies the mask with
// nearest-neighbor sampling and composites it over dst.
func (f *bitmapFace) Draw(dst draw.Image, s string, x, y float64, col color.Color) {
	if s == "" {
		return
	}
	m := f.face.Metrics()
	asc := m.Ascent.Ceil()
	w := font.MeasureString(f.face, s).Ceil()
	h := asc + m.Descent.Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	small := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.Opaque,
		Face: f.face,
		Dot:  fixed.P(0, asc),
	}
	d.DrawString(s)

	big := image.NewAlpha(image.Rect(0, 0, w*f.scale, h*f.scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Src, nil)

	origin := image.Pt(int(math.Round(x)), int(math.Round(y))-asc*f.scale)
	draw.DrawMask(dst, big.Bounds().Add(origin), image.NewUniform(col), image.Point{}, big, image.Point{}, draw.Over)
}

func (f *bitmapFace) Close() error { return nil }

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
