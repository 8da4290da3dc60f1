package export

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// Probe reads the header of a template raster (BMP or PNG) and returns its
// dimensions. The template is advisory: runs warn on a mismatch but the
// configured grid dimensions stay authoritative.
func Probe(path string) (w, h int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("open template: %w", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode template %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
