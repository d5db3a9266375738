package ui

import (
	"image/color"
	"io"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MyLocalPaint/internal/paint"
)

func newTestBoard(t *testing.T) (*Board, *[]string) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	opts := paint.DefaultOptions()
	opts.Logger = log.New(io.Discard)
	b := NewBoard(opts, fyne.NewSize(600, 400))
	var status []string
	b.OnStatus = func(s string) { status = append(status, s) }
	return b, &status
}

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func press(b *Board, x, y float32) { b.MouseDown(mouse(x, y, desktop.MouseButtonPrimary)) }
func release(b *Board)             { b.MouseUp(mouse(0, 0, desktop.MouseButtonPrimary)) }

func drag(b *Board, x, y float32) {
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}})
}

func TestBoardDrawsLines(t *testing.T) {
	b, _ := newTestBoard(t)

	press(b, 50, 200)
	drag(b, 60, 210)
	drag(b, 70, 220)
	release(b)

	assert.Len(t, b.App().Strokes(), 2)
	require.Len(t, b.lines.lines, 2)
	l := b.lines.lines[0].(*canvas.Line)
	assert.Equal(t, float32(20), l.StrokeWidth)
	assert.Equal(t, fyne.NewPos(50, 200), l.Position1)
	assert.Equal(t, fyne.NewPos(60, 210), l.Position2)
	assert.Equal(t, color.NRGBA{A: 255}, l.StrokeColor)
}

func TestBoardIgnoresSecondaryButton(t *testing.T) {
	b, _ := newTestBoard(t)
	b.MouseDown(mouse(50, 200, desktop.MouseButtonSecondary))
	drag(b, 60, 210)
	assert.Empty(t, b.App().Strokes())
}

func TestBoardToolbarClick(t *testing.T) {
	b, status := newTestBoard(t)

	press(b, 120, 30)
	release(b)
	assert.Equal(t, paint.ToolEraser, b.App().CurrentToolName())
	assert.Contains(t, *status, "Tool: Eraser | Size: 20")

	press(b, 70, 70)
	assert.Equal(t, paint.Red, b.App().Settings.Color())
}

func TestBoardUndoRedoRepaints(t *testing.T) {
	b, _ := newTestBoard(t)
	press(b, 50, 200)
	drag(b, 60, 210)
	drag(b, 70, 220)
	release(b)

	b.Undo()
	assert.Len(t, b.lines.lines, 1)
	b.Redo()
	assert.Len(t, b.lines.lines, 2)
	b.Clear()
	assert.Empty(t, b.lines.lines)
	assert.Empty(t, b.App().Strokes())
}

func TestBoardBackgroundRecolorsEraser(t *testing.T) {
	b, _ := newTestBoard(t)
	b.App().SetTool(paint.ToolEraser)
	press(b, 50, 200)
	drag(b, 60, 200)
	release(b)

	b.SetBackground(paint.Blue)
	assert.Equal(t, paint.Blue.NRGBA(), b.lines.bg.FillColor)
	require.Len(t, b.lines.lines, 1)
	assert.Equal(t, paint.Blue.NRGBA(), b.lines.lines[0].(*canvas.Line).StrokeColor)
}

func TestBoardRendererObjects(t *testing.T) {
	b, _ := newTestBoard(t)
	press(b, 50, 200)
	drag(b, 60, 210)

	r := test.WidgetRenderer(b)
	objects := r.Objects()
	require.NotEmpty(t, objects)
	assert.Same(t, b.lines.bg, objects[0])
	assert.Same(t, b.lines.lines[0], objects[1])
	assert.Equal(t, fyne.NewSize(600, 400), r.MinSize())

	var highlighted int
	for _, o := range objects {
		if rect, ok := o.(*canvas.Rectangle); ok && rect.StrokeWidth == 3 {
			highlighted++
		}
	}
	assert.Equal(t, 1, highlighted)
}

func TestBoardDragKeepsToolbar(t *testing.T) {
	b, _ := newTestBoard(t)
	press(b, 50, 200)
	r := test.WidgetRenderer(b).(*boardRenderer)
	require.NotEmpty(t, r.toolbar)
	first, status := r.toolbar[0], r.toolbar[len(r.toolbar)-1]

	drag(b, 60, 210)
	drag(b, 70, 220)
	assert.Same(t, first, r.toolbar[0])
	assert.Same(t, status, r.toolbar[len(r.toolbar)-1])
	assert.Contains(t, r.Objects(), b.lines.lines[1])

	release(b)
	assert.NotSame(t, first, r.toolbar[0])

	first = r.toolbar[0]
	b.SetBrushColor(paint.Red)
	assert.NotSame(t, first, r.toolbar[0])
	assert.Equal(t, "Tool: Brush | Size: 20", r.toolbar[len(r.toolbar)-1].(*canvas.Text).Text)
}

func TestBoardTestMode(t *testing.T) {
	b, status := newTestBoard(t)
	press(b, 50, 200)
	drag(b, 60, 210)
	release(b)
	before := b.App()

	b.Shortcut('t')
	require.True(t, b.TestMode())
	assert.True(t, b.testReport.OK())
	assert.Contains(t, (*status)[len(*status)-1], "Self-test:")

	press(b, 50, 300)
	drag(b, 60, 310)
	b.Shortcut(' ')
	assert.Len(t, b.App().Strokes(), 1)

	b.Shortcut('t')
	assert.False(t, b.TestMode())
	assert.NotSame(t, before, b.App())
	assert.Empty(t, b.App().Strokes())
	assert.Empty(t, b.lines.lines)
}

func TestBoardShortcuts(t *testing.T) {
	b, _ := newTestBoard(t)
	saved := 0
	b.OnSave = func() { saved++ }

	press(b, 50, 200)
	drag(b, 60, 210)
	release(b)

	b.Shortcut('s')
	b.Shortcut('S')
	assert.Equal(t, 2, saved)

	b.Shortcut(' ')
	assert.Empty(t, b.App().Strokes())

	b.Shortcut('x')
	assert.Equal(t, 2, saved)
}
