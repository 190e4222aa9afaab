// Package label draws numeric overlay labels onto raster images.
//
// A label [Face] is resolved once per run by [Resolve], which probes a list of
// TrueType font files and always succeeds: when no file loads it falls back to
// the embedded Go Bold font, and from there to a scaled bitmap font.
//
// Faces report a coarse layout box (advance width by line height). Faces that
// can also report the tight ink box of the rendered glyphs implement
// [InkBounder]; [PlaceRight] prefers that box and degrades to the coarse one.
package label

import (
	"image/color"
	"image/draw"

	"github.com/gogpu/gg/text"
)

// Rect is a bounding box relative to the text origin, Y increasing down.
type Rect = text.Rect

// Kind describes where a face's glyphs come from.
type Kind int

const (
	// KindFile is a TrueType/OpenType font loaded from disk.
	KindFile Kind = iota
	// KindEmbedded is the embedded Go Bold font.
	KindEmbedded
	// KindBitmap is the built-in fixed-size bitmap font, scaled up.
	KindBitmap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindEmbedded:
		return "embedded"
	case KindBitmap:
		return "bitmap"
	default:
		return "unknown"
	}
}

// Face renders single-line labels at a fixed size.
type Face interface {
	// Name returns a human-readable font name.
	Name() string

	// Kind reports the origin of the face.
	Kind() Kind

	// Measure returns the coarse size of s: the advance width and the
	// line height.
	Measure(s string) (w, h float64)

	// Ascent returns the distance from the top of the line box to the baseline.
	Ascent() float64

	// Draw renders s with its baseline origin at (x, y).
	Draw(dst draw.Image, s string, x, y float64, col color.Color)

	// Close releases font resources. The face must not be used afterwards.
	Close() error
}

// InkBounder is implemented by faces that can measure the exact ink extent
// of a string. ok is false when the measurement is unavailable.
type InkBounder interface {
	InkBounds(s string) (r Rect, ok bool)
}
