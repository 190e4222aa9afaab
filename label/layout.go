package label

import "math"

// PlaceRight returns the baseline origin at which s must be drawn so that it
// ends at rightX and is vertically centered in a box of the given height.
//
// When face implements InkBounder the visible glyph extent is aligned and
// precise is true. Otherwise, or when the ink box is unavailable, the coarse
// advance and line-height box is aligned instead.
func PlaceRight(face Face, s string, rightX, height float64) (x, y float64, precise bool) {
	if ib, ok := face.(InkBounder); ok {
		if r, ok := ib.InkBounds(s); ok && !r.Empty() {
			x = math.Round(rightX - r.MaxX)
			y = math.Round((height-r.Height())/2 - r.MinY)
			return x, y, true
		}
	}

	logger().Debug("label: ink bounds unavailable, using advance metrics", "face", face.Name())
	w, h := face.Measure(s)
	x = math.Round(rightX - w)
	y = math.Round((height-h)/2 + face.Ascent())
	return x, y, false
}
