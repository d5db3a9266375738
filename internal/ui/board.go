package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"MyLocalPaint/internal/paint"
	"MyLocalPaint/internal/selftest"
)

var (
	barColor      = color.Gray{Y: 240}
	buttonColor   = color.Gray{Y: 200}
	highlightEdge = color.NRGBA{R: 255, G: 255, A: 255}
)

// Board is the paint canvas. It forwards pointer events to a paint.App and
// draws the strokes with the toolbar strip on top.
type Board struct {
	widget.BaseWidget

	opts    paint.Options
	minSize fyne.Size
	logger  *log.Logger

	app   *paint.App
	lines *lineRenderer

	testMode   bool
	testReport selftest.Report

	// set whenever the toolbar or status may need redrawing
	toolbarStale bool

	OnStatus func(string)
	OnSave   func()
}

var _ fyne.Widget = (*Board)(nil)
var _ fyne.Draggable = (*Board)(nil)
var _ desktop.Mouseable = (*Board)(nil)

func NewBoard(opts paint.Options, size fyne.Size) *Board {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	b := &Board{opts: opts, minSize: size, logger: opts.Logger}
	b.reset()
	b.ExtendBaseWidget(b)
	return b
}

// reset replaces the painting with a fresh one built from the same options.
func (b *Board) reset() {
	b.lines = newLineRenderer(b.opts.Background)
	b.app = paint.NewApp(b.lines, b.opts)
	b.app.Init()
	b.toolbarStale = true
}

func (b *Board) App() *paint.App { return b.app }

func (b *Board) TestMode() bool { return b.testMode }

func (b *Board) notify(msg string) {
	if b.OnStatus != nil {
		b.OnStatus(msg)
	}
}

// changed repaints and reports the tool status after any model change.
func (b *Board) changed() {
	b.toolbarStale = true
	b.Refresh()
	if !b.testMode {
		b.notify(b.app.Status())
	}
}

func (b *Board) MouseDown(e *desktop.MouseEvent) {
	if b.testMode || e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.app.HandleMousePressed(e.Position.X, e.Position.Y)
	b.changed()
}

func (b *Board) MouseUp(e *desktop.MouseEvent) {
	if b.testMode || e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.app.HandleMouseReleased()
	b.changed()
}

func (b *Board) Dragged(e *fyne.DragEvent) {
	if b.testMode {
		return
	}
	n := len(b.lines.lines)
	b.app.HandleMouseDragged(e.Position.X, e.Position.Y)
	if len(b.lines.lines) != n {
		b.Refresh()
	}
}

func (b *Board) DragEnd() {
	if b.testMode {
		return
	}
	b.app.HandleMouseReleased()
}

func (b *Board) MouseIn(*desktop.MouseEvent)    {}
func (b *Board) MouseOut()                      {}
func (b *Board) MouseMoved(*desktop.MouseEvent) {}

func (b *Board) Undo() {
	b.app.Undo()
	b.changed()
}

func (b *Board) Redo() {
	b.app.Redo()
	b.changed()
}

func (b *Board) Clear() {
	b.app.Clear()
	b.changed()
}

func (b *Board) SetBrushColor(c paint.RGB) {
	b.app.Settings.SetColor(c)
	b.changed()
}

func (b *Board) SetBackground(c paint.RGB) {
	b.app.SetBackground(c)
	b.changed()
}

// ToggleTestMode runs the self-test on the way in. Leaving test mode starts a
// new painting, the same as a fresh launch.
func (b *Board) ToggleTestMode() {
	if !b.testMode {
		b.testMode = true
		b.testReport = selftest.Run(b.logger)
		b.toolbarStale = true
		b.Refresh()
		b.notify("Self-test: " + b.testReport.String())
		return
	}
	b.testMode = false
	b.reset()
	b.logger.Info("left test mode")
	b.changed()
}

// Shortcut handles the single-key commands: t toggles test mode, space clears
// and s saves.
func (b *Board) Shortcut(r rune) {
	switch r {
	case 't', 'T':
		b.ToggleTestMode()
	case ' ':
		if !b.testMode {
			b.Clear()
		}
	case 's', 'S':
		if !b.testMode && b.OnSave != nil {
			b.OnSave()
		}
	}
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b, bar: canvas.NewRectangle(barColor)}
	r.Refresh()
	return r
}

type boardRenderer struct {
	board   *Board
	bar     *canvas.Rectangle
	toolbar []fyne.CanvasObject
	objects []fyne.CanvasObject
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Refresh restacks the canvas. The toolbar objects are kept between refreshes
// and rebuilt only once the board marks them stale.
func (r *boardRenderer) Refresh() {
	b := r.board
	width := b.Size().Width
	if width < b.minSize.Width {
		width = b.minSize.Width
	}
	height := b.Size().Height
	if height < b.minSize.Height {
		height = b.minSize.Height
	}
	b.lines.bg.Resize(fyne.NewSize(width, height))
	r.bar.Resize(fyne.NewSize(width, b.app.UIHeight()))

	if b.toolbarStale || r.toolbar == nil {
		r.toolbar = r.buildToolbar(width)
		b.toolbarStale = false
	}

	objects := make([]fyne.CanvasObject, 0, len(b.lines.lines)+len(r.toolbar)+2)
	objects = append(objects, b.lines.bg)
	if !b.testMode {
		objects = append(objects, b.lines.lines...)
	}
	objects = append(objects, r.bar)
	objects = append(objects, r.toolbar...)
	r.objects = objects
	canvas.Refresh(b)
}

// buildToolbar draws the canvas buttons and the status text; the swatch
// matching the brush color gets a yellow frame. In test mode the strip only
// carries the self-test result.
func (r *boardRenderer) buildToolbar(width float32) []fyne.CanvasObject {
	b := r.board
	app := b.app
	if b.testMode {
		return []fyne.CanvasObject{
			centeredText("Self-test: "+b.testReport.String()+"  (press t to return)", width/2, app.UIHeight()/2),
		}
	}

	var objects []fyne.CanvasObject
	for _, btn := range app.Buttons() {
		var fill color.Color = buttonColor
		if btn.Swatch {
			fill = btn.Color.NRGBA()
		}
		rect := canvas.NewRectangle(fill)
		rect.StrokeColor = color.Black
		rect.StrokeWidth = 1
		rect.Move(fyne.NewPos(btn.X, btn.Y))
		rect.Resize(fyne.NewSize(btn.W, btn.H))
		objects = append(objects, rect)

		if btn.Label != "" {
			objects = append(objects, centeredText(btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2))
		}
		if btn.Swatch && btn.Color == app.Settings.Color() {
			hl := canvas.NewRectangle(color.Transparent)
			hl.StrokeColor = highlightEdge
			hl.StrokeWidth = 3
			hl.Move(fyne.NewPos(btn.X-1.5, btn.Y-1.5))
			hl.Resize(fyne.NewSize(btn.W+3, btn.H+3))
			objects = append(objects, hl)
		}
	}
	return append(objects, centeredText(app.Status(), 250, 35))
}

func centeredText(s string, cx, cy float32) *canvas.Text {
	t := canvas.NewText(s, color.Black)
	t.TextSize = 12
	size := t.MinSize()
	t.Move(fyne.NewPos(cx-size.Width/2, cy-size.Height/2))
	t.Resize(size)
	return t
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.board.lines.bg.Resize(size)
	r.bar.Resize(fyne.NewSize(size.Width, r.board.app.UIHeight()))
}

func (r *boardRenderer) MinSize() fyne.Size {
	return r.board.minSize
}

func (r *boardRenderer) Destroy() {}
