package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// MovieRecorder appends snapshot frames to an MJPEG AVI file. Frames must
// match the dimensions the recorder was opened with.
type MovieRecorder struct {
	aw  mjpeg.AviWriter
	buf bytes.Buffer
	opt jpeg.Options
}

// NewMovieRecorder opens an AVI container at path for w×h frames at the
// given frame rate.
func NewMovieRecorder(path string, w, h, fps int) (*MovieRecorder, error) {
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create movie %s: %w", path, err)
	}
	return &MovieRecorder{aw: aw, opt: jpeg.Options{Quality: 100}}, nil
}

// AddFrame JPEG-encodes img and appends it to the container.
func (m *MovieRecorder) AddFrame(img image.Image) error {
	m.buf.Reset()
	if err := jpeg.Encode(&m.buf, img, &m.opt); err != nil {
		return fmt.Errorf("encode movie frame: %w", err)
	}
	if err := m.aw.AddFrame(m.buf.Bytes()); err != nil {
		return fmt.Errorf("append movie frame: %w", err)
	}
	return nil
}

// Close finalizes the container index. The recorder is unusable afterwards.
func (m *MovieRecorder) Close() error {
	if err := m.aw.Close(); err != nil {
		return fmt.Errorf("finalize movie: %w", err)
	}
	return nil
}
