package paint

// Tool consumes pointer events and turns drags into strokes.
type Tool interface {
	Name() string
	OnPress(x, y float32)
	OnDrag(x, y float32)
	OnRelease()
	Drawing() bool
}

// StrokeSink receives the strokes a tool emits.
type StrokeSink interface {
	AddStroke(Stroke)
}

// StrokeSinkFunc adapts a plain function to a StrokeSink.
type StrokeSinkFunc func(Stroke)

func (f StrokeSinkFunc) AddStroke(s Stroke) { f(s) }

// PointerTool is the freehand tool. Its Kind decides what a drag emits.
type PointerTool struct {
	name     string
	kind     Kind
	settings *ToolSettings
	sink     StrokeSink

	drawing      bool
	lastX, lastY float32
}

var _ Tool = (*PointerTool)(nil)

func NewBrush(settings *ToolSettings, sink StrokeSink) *PointerTool {
	return &PointerTool{name: "Brush", kind: KindBrush, settings: settings, sink: sink}
}

func NewEraser(settings *ToolSettings, sink StrokeSink) *PointerTool {
	return &PointerTool{name: "Eraser", kind: KindEraser, settings: settings, sink: sink}
}

func (t *PointerTool) Name() string  { return t.name }
func (t *PointerTool) Kind() Kind    { return t.kind }
func (t *PointerTool) Drawing() bool { return t.drawing }

func (t *PointerTool) OnPress(x, y float32) {
	t.drawing = true
	t.lastX, t.lastY = x, y
}

// OnDrag emits one segment from the previous anchor to (x, y), so a drag
// becomes a polyline of short strokes.
func (t *PointerTool) OnDrag(x, y float32) {
	if !t.drawing {
		return
	}
	s := Stroke{
		X1: t.lastX, Y1: t.lastY,
		X2: x, Y2: y,
		Kind:   t.kind,
		Weight: float32(t.settings.Size()),
	}
	if t.kind == KindBrush {
		s.Color = t.settings.Color()
	}
	t.sink.AddStroke(s)
	t.lastX, t.lastY = x, y
}

func (t *PointerTool) OnRelease() {
	t.drawing = false
	t.lastX, t.lastY = 0, 0
}
