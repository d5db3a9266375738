// Package paint is the drawing model behind the sketch: tool settings, the
// brush and eraser tools, the canvas toolbar buttons and the stroke history
// that is replayed to repaint the canvas.
//
// Nothing here locks. Callers must stay on a single goroutine; the board
// calls in from fyne's main goroutine only.
package paint

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DragMode records what the current pointer drag is interacting with.
type DragMode int

const (
	DragNone DragMode = iota
	DragUI
	DragPaint
)

func (m DragMode) String() string {
	switch m {
	case DragNone:
		return "none"
	case DragUI:
		return "ui"
	case DragPaint:
		return "paint"
	}
	return fmt.Sprintf("DragMode(%d)", int(m))
}

const (
	ToolBrush  = "brush"
	ToolEraser = "eraser"
)

// Options configures a new App.
type Options struct {
	UIHeight   float32
	Background RGB
	Size       int
	Color      RGB
	Palette    []RGB
	SizeStep   int
	Logger     *log.Logger
}

func DefaultOptions() Options {
	return Options{
		UIHeight:   100,
		Background: White,
		Size:       DefaultSize,
		Color:      Black,
		Palette:    []RGB{Black, Red, Blue},
		SizeStep:   4,
	}
}

// App owns the settings, the tools, the toolbar buttons and the stroke history,
// and routes pointer events either to a button or to the active tool.
type App struct {
	Settings *ToolSettings

	session  string
	renderer Renderer
	logger   *log.Logger
	palette  []RGB
	sizeStep int

	tools       map[string]Tool
	currentName string
	current     Tool

	buttons  []*Button
	dragMode DragMode
	bg       RGB
	uiHeight float32

	strokes []Stroke
	undone  []Stroke
}

// NewApp builds an App drawing into r. A nil renderer draws nothing.
func NewApp(r Renderer, opts Options) *App {
	if r == nil {
		r = Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	session := uuid.NewString()

	a := &App{
		Settings: NewToolSettings(),
		session:  session,
		renderer: r,
		logger:   logger.With("session", session[:8]),
		palette:  slices.Clone(opts.Palette),
		sizeStep: opts.SizeStep,
		bg:       opts.Background,
		uiHeight: opts.UIHeight,
	}
	a.Settings.SetSize(opts.Size)
	a.Settings.SetColor(opts.Color)
	a.tools = map[string]Tool{
		ToolBrush:  NewBrush(a.Settings, a),
		ToolEraser: NewEraser(a.Settings, a),
	}
	a.currentName = ToolBrush
	a.current = a.tools[ToolBrush]
	return a
}

// Init lays out the default toolbar: tool buttons on the first row, then one
// swatch per palette color followed by the size buttons.
func (a *App) Init() {
	a.buttons = a.buttons[:0]
	a.AddButton(NewButton(20, 20, 80, 30, "Brush", func() { a.SetTool(ToolBrush) }))
	a.AddButton(NewButton(110, 20, 80, 30, "Eraser", func() { a.SetTool(ToolEraser) }))

	x := float32(20)
	for _, c := range a.palette {
		a.AddButton(NewSwatch(x, 60, 30, 30, c, func() { a.Settings.SetColor(c) }))
		x += 40
	}
	a.AddButton(NewButton(x, 60, 30, 30, "-", func() { a.Settings.SetSize(a.Settings.Size() - a.sizeStep) }))
	a.AddButton(NewButton(x+40, 60, 30, 30, "+", func() { a.Settings.SetSize(a.Settings.Size() + a.sizeStep) }))
}

func (a *App) AddButton(b *Button) {
	a.buttons = append(a.buttons, b)
}

// SetTool releases the current tool so a drag cannot leak across the switch.
func (a *App) SetTool(name string) {
	t, ok := a.tools[name]
	if !ok {
		a.logger.Warn("unknown tool", "tool", name)
		return
	}
	a.current.OnRelease()
	a.current = t
	a.currentName = name
	a.logger.Info("tool switched", "tool", name)
}

// paintBoundary is the lowest y that still belongs to the toolbar. It is padded
// by half the brush size so a wide brush does not bleed into the strip.
func (a *App) paintBoundary() float32 {
	return a.uiHeight + float32(a.Settings.Size())/2
}

func (a *App) HandleMousePressed(x, y float32) {
	for _, b := range a.buttons {
		if b.Contains(x, y) {
			b.Click()
			a.dragMode = DragUI
			return
		}
	}
	if y > a.paintBoundary() {
		a.dragMode = DragPaint
		a.current.OnPress(x, y)
	} else {
		a.dragMode = DragNone
	}
}

// HandleMouseDragged forwards to the active tool during a paint drag. Leaving
// the paint area ends the drag until the next press.
func (a *App) HandleMouseDragged(x, y float32) {
	if a.dragMode != DragPaint {
		return
	}
	if y <= a.paintBoundary() {
		a.dragMode = DragNone
		a.current.OnRelease()
		return
	}
	a.current.OnDrag(x, y)
}

func (a *App) HandleMouseReleased() {
	a.dragMode = DragNone
	a.current.OnRelease()
}

// AddStroke records s, drops anything pending redo and draws only s.
func (a *App) AddStroke(s Stroke) {
	a.strokes = append(a.strokes, s)
	a.undone = nil
	a.renderer.StrokeLine(s.Segment(a.bg))
}

// Replay clears r to the background (when r can clear) and draws every stroke
// in order. Eraser strokes pick up the background color at this point.
func (a *App) Replay(r Renderer) {
	if c, ok := r.(Clearer); ok {
		c.Clear(a.bg)
	}
	for _, s := range a.strokes {
		r.StrokeLine(s.Segment(a.bg))
	}
}

func (a *App) RedrawCanvas() {
	a.Replay(a.renderer)
}

func (a *App) Undo() {
	if len(a.strokes) == 0 {
		return
	}
	last := a.strokes[len(a.strokes)-1]
	a.strokes = a.strokes[:len(a.strokes)-1]
	a.undone = append(a.undone, last)
	a.logger.Debug("undo", "strokes", len(a.strokes), "undone", len(a.undone))
	a.RedrawCanvas()
}

func (a *App) Redo() {
	if len(a.undone) == 0 {
		return
	}
	last := a.undone[len(a.undone)-1]
	a.undone = a.undone[:len(a.undone)-1]
	a.strokes = append(a.strokes, last)
	a.logger.Debug("redo", "strokes", len(a.strokes), "undone", len(a.undone))
	a.RedrawCanvas()
}

// SetBackground recolors the canvas and repaints; prior eraser strokes follow
// the new color.
func (a *App) SetBackground(c RGB) {
	a.bg = c
	a.RedrawCanvas()
}

// Clear throws away the whole history.
func (a *App) Clear() {
	a.strokes = nil
	a.undone = nil
	if c, ok := a.renderer.(Clearer); ok {
		c.Clear(a.bg)
	}
	a.logger.Info("canvas cleared")
}

// Status is the text shown next to the toolbar.
func (a *App) Status() string {
	return fmt.Sprintf("Tool: %s | Size: %d", a.current.Name(), a.Settings.Size())
}

func (a *App) Session() string         { return a.session }
func (a *App) Background() RGB         { return a.bg }
func (a *App) UIHeight() float32       { return a.uiHeight }
func (a *App) DragMode() DragMode      { return a.dragMode }
func (a *App) CurrentTool() Tool       { return a.current }
func (a *App) CurrentToolName() string { return a.currentName }
func (a *App) Buttons() []*Button      { return slices.Clone(a.buttons) }
func (a *App) Strokes() []Stroke       { return slices.Clone(a.strokes) }
func (a *App) Undone() []Stroke        { return slices.Clone(a.undone) }
func (a *App) CanUndo() bool           { return len(a.strokes) > 0 }
func (a *App) CanRedo() bool           { return len(a.undone) > 0 }
