package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"MyLocalPaint/internal/config"
	"MyLocalPaint/internal/export"
)

// quickSave writes <export.dir>/<export.name>.png without asking.
func quickSave(board *Board, cfg config.Config) error {
	path := cfg.ExportPath(".png")
	if err := export.SaveFile(path, cfg.Canvas.Width, cfg.Canvas.Height, board.App()); err != nil {
		board.logger.Error("save failed", "path", path, "err", err)
		return err
	}
	board.logger.Info("saved", "path", path, "strokes", len(board.App().Strokes()))
	board.notify(fmt.Sprintf("Saved %s", filepath.Base(path)))
	return nil
}

// showSaveDialog lets the user pick a .png or .pdf destination.
func showSaveDialog(board *Board, cfg config.Config, w fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				board.logger.Error("closing export", "err", err)
			}
		}()

		uri := writer.URI()
		if err := export.Write(writer, uri.Extension(), cfg.Canvas.Width, cfg.Canvas.Height, board.App()); err != nil {
			board.logger.Error("export failed", "uri", uri.String(), "err", err)
			dialog.ShowError(err, w)
			return
		}
		board.logger.Info("exported", "uri", uri.String())
		board.notify("Saved " + uri.Name())
	}, w)
	d.SetFileName(cfg.Export.Name + ".png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".pdf"}))
	d.Show()
}
