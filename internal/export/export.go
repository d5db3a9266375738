// Package export writes a painting to an image file by replaying its strokes
// into an off-screen renderer. The toolbar strip is not part of the output.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"MyLocalPaint/internal/paint"
)

// ErrUnsupportedFormat is returned for file extensions other than .png and .pdf.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Scene is a painting that can be replayed; *paint.App is one.
type Scene interface {
	Replay(r paint.Renderer)
	Session() string
}

func WritePNG(w io.Writer, width, height int, s Scene) error {
	r := NewRaster(width, height)
	s.Replay(r)
	if err := r.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func WritePDF(w io.Writer, width, height int, s Scene) error {
	p := NewPDF(width, height, "painting "+s.Session())
	s.Replay(p)
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// Write picks the format from ext, e.g. ".png" or "PDF".
func Write(w io.Writer, ext string, width, height int, s Scene) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return WritePNG(w, width, height, s)
	case "pdf":
		return WritePDF(w, width, height, s)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// SaveFile writes the painting to path, creating parent directories as needed.
func SaveFile(path string, width, height int, s Scene) (err error) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".png", ".pdf":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return Write(f, ext, width, height, s)
}
