package stickfig

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFrameFilename(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{1, "image_0001.png"},
		{42, "image_0042.png"},
		{9999, "image_9999.png"},
		{10000, "image_10000.png"},
	}
	for _, tt := range tests {
		if got := FrameFilename(tt.index); got != tt.want {
			t.Errorf("FrameFilename(%d) = %q, want %q", tt.index, got, tt.want)
		}
		got, ok := ParseFrameIndex(tt.want)
		if !ok || got != tt.index {
			t.Errorf("ParseFrameIndex(%q) = %d, %v, want %d, true", tt.want, got, ok, tt.index)
		}
	}
}

func TestParseFrameIndexRejects(t *testing.T) {
	for _, name := range []string{
		"",
		"image_.png",
		"image_12.png",
		"image_0000.png",
		"image_00a1.png",
		"frame_0001.png",
		"image_0001.jpg",
		".image_123.tmp",
	} {
		if n, ok := ParseFrameIndex(name); ok {
			t.Errorf("ParseFrameIndex(%q) = %d, true, want false", name, n)
		}
	}
	if n, ok := ParseFrameIndex(filepath.Join("some", "dir", "image_0007.png")); !ok || n != 7 {
		t.Errorf("ParseFrameIndex with directory = %d, %v, want 7, true", n, ok)
	}
}

func TestFrameSave(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	img.SetRGBA(3, 2, color.RGBA{R: 255, G: 105, B: 180, A: 255})
	f := &Frame{Index: 3, Image: img}

	path, err := f.Save(dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, "image_0003.png"); path != want {
		t.Errorf("Save path = %q, want %q", path, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "image_0003.png" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contains %v, want only image_0003.png", names)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = file.Close() }()
	decoded, err := png.Decode(file)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	r, g, b, _ := decoded.At(3, 2).RGBA()
	if r>>8 != 255 || g>>8 != 105 || b>>8 != 180 {
		t.Errorf("decoded pixel = (%d, %d, %d), want (255, 105, 180)", r>>8, g>>8, b>>8)
	}
}

func TestFrameSaveMissingDir(t *testing.T) {
	f := &Frame{Index: 1, Image: image.NewRGBA(image.Rect(0, 0, 1, 1))}
	if _, err := f.Save(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Save into a missing directory succeeded")
	}
}
