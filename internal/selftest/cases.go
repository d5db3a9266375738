package selftest

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"MyLocalPaint/internal/paint"
)

// Run executes the built-in cases and logs a summary.
func Run(logger *log.Logger) Report {
	if logger == nil {
		logger = log.Default()
	}
	s := NewSuite(logger)
	logger.Info("running self-test")
	register(s)
	r := s.Report()
	if r.OK() {
		logger.Info("self-test finished", "result", r.String())
	} else {
		logger.Error("self-test finished", "result", r.String())
	}
	return r
}

func quietApp(r paint.Renderer) *paint.App {
	opts := paint.DefaultOptions()
	opts.Logger = log.New(io.Discard)
	a := paint.NewApp(r, opts)
	a.Init()
	return a
}

func register(s *Suite) {
	s.Describe("Button", func() {
		s.It("contains() is inclusive on every edge", func(t *T) {
			b := paint.NewButton(10, 10, 50, 20, "", nil)
			assert.True(t, b.Contains(15, 15))
			assert.True(t, b.Contains(10, 10))
			assert.True(t, b.Contains(60, 30))
			assert.False(t, b.Contains(0, 0))
		})
		s.It("click() calls the callback", func(t *T) {
			clicked := false
			b := paint.NewButton(0, 0, 10, 10, "", func() { clicked = true })
			b.Click()
			assert.True(t, clicked)
		})
	})

	s.Describe("ToolSettings", func() {
		s.It("clamps size", func(t *T) {
			st := paint.NewToolSettings()
			st.SetSize(100)
			assert.Equal(t, 50, st.Size())
			st.SetSize(0)
			assert.Equal(t, 2, st.Size())
		})
		s.It("copies color", func(t *T) {
			st := paint.NewToolSettings()
			c := paint.RGB{255, 0, 0}
			st.SetColor(c)
			c[0] = 0
			assert.Equal(t, paint.Red, st.Color())
		})
	})

	s.Describe("Brush", func() {
		s.It("draws with the settings color and weight", func(t *T) {
			st := paint.NewToolSettings()
			st.SetColor(paint.Red)
			st.SetSize(10)
			r := &paint.Recorder{}
			brush := paint.NewBrush(st, paint.StrokeSinkFunc(func(s paint.Stroke) {
				r.StrokeLine(s.Segment(paint.White))
			}))
			brush.OnPress(0, 0)
			brush.OnDrag(10, 10)
			if assert.Len(t, r.Calls, 1) {
				assert.Equal(t, paint.Segment{X2: 10, Y2: 10, Color: paint.Red, Weight: 10}, r.Calls[0])
			}
		})
	})

	s.Describe("Eraser", func() {
		s.It("paints the background current at redraw time", func(t *T) {
			r := &paint.Recorder{}
			a := quietApp(r)
			a.SetTool(paint.ToolEraser)
			a.HandleMousePressed(50, 200)
			a.HandleMouseDragged(60, 200)
			a.HandleMouseDragged(70, 200)
			a.HandleMouseReleased()

			r.Reset()
			a.SetBackground(paint.Blue)
			if assert.Len(t, r.Calls, 2) {
				assert.Equal(t, paint.Blue, r.Calls[0].Color)
				assert.Equal(t, paint.Blue, r.Calls[1].Color)
			}
		})
	})

	s.Describe("History", func() {
		s.It("undo then redo restores the stroke", func(t *T) {
			a := quietApp(nil)
			sa := paint.Stroke{X2: 1, Y2: 1, Weight: 2}
			sb := paint.Stroke{X1: 1, Y1: 1, X2: 2, Y2: 2, Weight: 2}
			a.AddStroke(sa)
			a.AddStroke(sb)
			a.Undo()
			assert.Equal(t, []paint.Stroke{sa}, a.Strokes())
			assert.Equal(t, []paint.Stroke{sb}, a.Undone())
			a.Redo()
			assert.Equal(t, []paint.Stroke{sa, sb}, a.Strokes())
			assert.Empty(t, a.Undone())
		})
		s.It("a new stroke discards pending redo", func(t *T) {
			a := quietApp(nil)
			a.AddStroke(paint.Stroke{Weight: 2})
			a.Undo()
			a.AddStroke(paint.Stroke{X2: 5, Weight: 2})
			assert.False(t, a.CanRedo())
		})
		s.It("undo and redo on empty history do nothing", func(t *T) {
			a := quietApp(nil)
			a.Undo()
			a.Redo()
			assert.Empty(t, a.Strokes())
			assert.Empty(t, a.Undone())
		})
	})
}
