package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"MyLocalPaint/internal/paint"
)

// PDF draws strokes as vector lines on a single page the size of the canvas,
// one PDF point per canvas pixel.
type PDF struct {
	doc           *gofpdf.Fpdf
	width, height float64
}

var (
	_ paint.Renderer = (*PDF)(nil)
	_ paint.Clearer  = (*PDF)(nil)
)

func NewPDF(width, height int, title string) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	doc.SetTitle(title, true)
	doc.SetCreator("MyLocalPaint", true)
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return &PDF{doc: doc, width: float64(width), height: float64(height)}
}

func (p *PDF) Clear(bg paint.RGB) {
	p.doc.SetFillColor(int(bg[0]), int(bg[1]), int(bg[2]))
	p.doc.Rect(0, 0, p.width, p.height, "F")
}

func (p *PDF) StrokeLine(s paint.Segment) {
	p.doc.SetDrawColor(int(s.Color[0]), int(s.Color[1]), int(s.Color[2]))
	p.doc.SetLineWidth(float64(s.Weight))
	p.doc.SetLineCapStyle("round")
	p.doc.Line(float64(s.X1), float64(s.Y1), float64(s.X2), float64(s.Y2))
}

// Output writes the document and reports any error gofpdf accumulated.
func (p *PDF) Output(w io.Writer) error {
	return p.doc.Output(w)
}
