package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"MyLocalPaint/internal/config"
)

// Run opens the paint window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, cfg config.Config, logger *log.Logger) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Local Paint")

	size := fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height))
	board := NewBoard(cfg.PaintOptions(logger), size)

	statusBar := widget.NewLabel(board.App().Status())
	board.OnStatus = statusBar.SetText
	board.OnSave = func() {
		if err := quickSave(board, cfg); err != nil {
			dialog.ShowError(err, myWindow)
		}
	}
	controls := NewControls(board, myWindow, func() { showSaveDialog(board, cfg, myWindow) })

	// space arrives as a typed rune too
	myWindow.Canvas().SetOnTypedRune(board.Shortcut)

	logger.Info("starting", "session", board.App().Session(), "canvas", size)
	myWindow.SetContent(container.NewBorder(controls, statusBar, nil, nil, board))
	myWindow.Resize(myWindow.Content().MinSize())

	closed := make(chan struct{})
	defer close(closed)
	go func() {
		select {
		case <-ctx.Done():
			logger.Info("shutting down", "reason", context.Cause(ctx))
			fyne.Do(myApp.Quit)
		case <-closed:
		}
	}()

	myWindow.ShowAndRun()
}
