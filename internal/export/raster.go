package export

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	"MyLocalPaint/internal/paint"
)

// Raster draws strokes into an in-memory RGBA image.
type Raster struct {
	dc *gg.Context
}

var (
	_ paint.Renderer = (*Raster)(nil)
	_ paint.Clearer  = (*Raster)(nil)
)

func NewRaster(width, height int) *Raster {
	return &Raster{dc: gg.NewContext(width, height)}
}

func (r *Raster) Clear(bg paint.RGB) {
	r.dc.SetRGB255(int(bg[0]), int(bg[1]), int(bg[2]))
	r.dc.Clear()
}

// StrokeLine draws with round caps so consecutive segments join smoothly.
func (r *Raster) StrokeLine(s paint.Segment) {
	r.dc.SetRGB255(int(s.Color[0]), int(s.Color[1]), int(s.Color[2]))
	r.dc.SetLineWidth(float64(s.Weight))
	r.dc.SetLineCapRound()
	r.dc.DrawLine(float64(s.X1), float64(s.Y1), float64(s.X2), float64(s.Y2))
	r.dc.Stroke()
}

func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}
