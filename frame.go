package stickfig

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	framePrefix = "image_"
	frameExt    = ".png"
)

// Frame is one rendered image tagged with its 1-based sequence index.
type Frame struct {
	Index int
	Image *image.RGBA
}

// FrameFilename returns the file name for the frame with the given index,
// zero-padded to four digits: image_0001.png.
func FrameFilename(index int) string {
	return fmt.Sprintf("%s%04d%s", framePrefix, index, frameExt)
}

// ParseFrameIndex extracts the index from a name produced by FrameFilename.
func ParseFrameIndex(name string) (int, bool) {
	name = filepath.Base(name)
	if !strings.HasPrefix(name, framePrefix) || !strings.HasSuffix(name, frameExt) {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, framePrefix), frameExt)
	if len(digits) < 4 {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Filename returns the frame's file name.
func (f *Frame) Filename() string {
	return FrameFilename(f.Index)
}

// EncodePNG writes the frame as PNG to w.
func (f *Frame) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.Image)
}

// Save writes the frame into dir and returns the file path. The PNG is
// written to a temporary file first and renamed into place, so the final
// name only ever refers to a complete image.
func (f *Frame) Save(dir string) (string, error) {
	path := filepath.Join(dir, f.Filename())

	tmp, err := os.CreateTemp(dir, "."+framePrefix+"*.tmp")
	if err != nil {
		return path, err
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return path, err
	}
	if err := f.EncodePNG(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return path, fmt.Errorf("encode png: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return path, err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return path, err
	}
	return path, nil
}
