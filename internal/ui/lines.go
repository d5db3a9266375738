package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"MyLocalPaint/internal/paint"
)

// lineRenderer is the live paint.Renderer: every segment becomes a canvas.Line
// on top of a background rectangle.
type lineRenderer struct {
	bg    *canvas.Rectangle
	lines []fyne.CanvasObject
}

var (
	_ paint.Renderer = (*lineRenderer)(nil)
	_ paint.Clearer  = (*lineRenderer)(nil)
)

func newLineRenderer(bg paint.RGB) *lineRenderer {
	return &lineRenderer{bg: canvas.NewRectangle(bg.NRGBA())}
}

func (r *lineRenderer) StrokeLine(s paint.Segment) {
	l := canvas.NewLine(s.Color.NRGBA())
	l.StrokeWidth = s.Weight
	l.Position1 = fyne.NewPos(s.X1, s.Y1)
	l.Position2 = fyne.NewPos(s.X2, s.Y2)
	r.lines = append(r.lines, l)
}

func (r *lineRenderer) Clear(bg paint.RGB) {
	r.bg.FillColor = bg.NRGBA()
	r.lines = nil
}
