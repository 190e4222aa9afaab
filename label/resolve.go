package label

import (
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

// DefaultPaths returns the bold sans-serif font files probed by Resolve,
// in order. Relative entries are looked up in the working directory.
func DefaultPaths() []string {
	return []string{
		"DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Bold.ttf",
		"/Library/Fonts/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
		"C:\\Windows\\Fonts\\arialbd.ttf",
		"arial.ttf",
	}
}

// Resolve returns a face of the given pixel size. It tries each path in
// order and uses the first font that loads and has digit glyphs. When none
// does it falls back to the embedded Go Bold font, and if that cannot be
// parsed, to the scaled bitmap font. Resolve never fails.
func Resolve(paths []string, size float64) Face {
	log := logger()

	for _, path := range paths {
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			log.Debug("label: font candidate unavailable", "path", path, "err", err)
			continue
		}
		if !src.Face(size).HasGlyph('0') {
			log.Debug("label: font candidate has no digits", "path", path)
			_ = src.Close()
			continue
		}
		log.Info("label: using font", "path", path, "name", src.Name())
		return newSourceFace(src, size, KindFile)
	}

	face, err := NewSourceFace(gobold.TTF, size)
	if err == nil {
		log.Warn("label: no font file found, using embedded font", "name", face.Name())
		return face
	}

	log.Warn("label: embedded font unusable, using bitmap font", "err", err)
	return NewBitmapFace(size)
}
