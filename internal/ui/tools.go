package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MyLocalPaint/internal/paint"
)

// colorSwatch is a tappable color preview that opens a picker.
type colorSwatch struct {
	widget.BaseWidget
	Color    paint.RGB
	OnTapped func()
}

func newColorSwatch(c paint.RGB, tapped func()) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c paint.RGB) {
	s.Color = c
	s.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color.NRGBA())
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return &swatchRenderer{
		WidgetRenderer: widget.NewSimpleRenderer(container.NewStack(rect, border)),
		swatch:         s,
		rect:           rect,
	}
}

type swatchRenderer struct {
	fyne.WidgetRenderer
	swatch *colorSwatch
	rect   *canvas.Rectangle
}

func (r *swatchRenderer) Refresh() {
	r.rect.FillColor = r.swatch.Color.NRGBA()
	r.rect.Refresh()
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// pickColor opens the advanced color picker preset to current.
func pickColor(title string, current paint.RGB, w fyne.Window, picked func(paint.RGB)) {
	d := dialog.NewColorPicker(title, "", func(c color.Color) {
		picked(paint.RGBFromColor(c))
	}, w)
	d.Advanced = true
	d.SetColor(current.NRGBA())
	d.Show()
}

// NewControls builds the bar above the board: brush and background color
// pickers, history buttons and export.
func NewControls(board *Board, w fyne.Window, save func()) fyne.CanvasObject {
	var brushSwatch, bgSwatch *colorSwatch
	brushSwatch = newColorSwatch(board.App().Settings.Color(), func() {
		pickColor("Brush color", board.App().Settings.Color(), w, func(c paint.RGB) {
			board.SetBrushColor(c)
			brushSwatch.SetColor(c)
		})
	})
	bgSwatch = newColorSwatch(board.App().Background(), func() {
		pickColor("Background", board.App().Background(), w, func(c paint.RGB) {
			board.SetBackground(c)
			bgSwatch.SetColor(c)
		})
	})

	// canvas swatch clicks change the brush color without going through the picker
	prev := board.OnStatus
	board.OnStatus = func(msg string) {
		brushSwatch.SetColor(board.App().Settings.Color())
		bgSwatch.SetColor(board.App().Background())
		if prev != nil {
			prev(msg)
		}
	}

	history := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), board.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), board.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), save),
	)

	return container.NewHBox(
		widget.NewLabel("Color:"),
		brushSwatch,
		widget.NewLabel("Bg:"),
		bgSwatch,
		widget.NewSeparator(),
		history,
	)
}
