// Package export persists simulation output: numbered snapshot frames,
// optional movie capture, and per-snapshot field statistics.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
)

// FrameWriter persists one rendered frame under an iteration label.
type FrameWriter interface {
	WriteFrame(img image.Image, label int) error
}

// DirWriter writes frames into a directory, one file per label, named
// base+label+ext (Output0.png, Output200.png, ...). The extension selects
// the encoder.
type DirWriter struct {
	dir  string
	base string
	ext  string
}

// NewDirWriter creates the target directory if needed. Supported extensions
// are ".png" and ".bmp"; an empty base defaults to "Output".
func NewDirWriter(dir, base, ext string) (*DirWriter, error) {
	if base == "" {
		base = "Output"
	}
	ext = strings.ToLower(ext)
	switch ext {
	case ".png", ".bmp":
	default:
		return nil, fmt.Errorf("unsupported frame format %q", ext)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame directory: %w", err)
	}
	return &DirWriter{dir: dir, base: base, ext: ext}, nil
}

// FramePath returns the file path a given label encodes to.
func (w *DirWriter) FramePath(label int) string {
	return filepath.Join(w.dir, w.base+strconv.Itoa(label)+w.ext)
}

// WritePNG encodes a single standalone image, such as a sweep phase map.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// WriteFrame encodes img to the label's path.
func (w *DirWriter) WriteFrame(img image.Image, label int) error {
	path := w.FramePath(label)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame %s: %w", path, err)
	}
	defer f.Close()
	switch w.ext {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode frame %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("flush frame %s: %w", path, err)
	}
	return nil
}
