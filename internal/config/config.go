// Package config loads the sketch settings from a TOML file. Every field has a
// default, so a config file only needs the keys it changes.
package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"MyLocalPaint/internal/paint"
)

type Config struct {
	Canvas Canvas `toml:"canvas"`
	Brush  Brush  `toml:"brush"`
	Export Export `toml:"export"`
}

type Canvas struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	UIHeight   float32 `toml:"ui_height"`
	Background string  `toml:"background"`
}

type Brush struct {
	Size     int      `toml:"size"`
	Color    string   `toml:"color"`
	SizeStep int      `toml:"size_step"`
	Palette  []string `toml:"palette"`
}

type Export struct {
	Dir  string `toml:"dir"`
	Name string `toml:"name"`
}

func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:      600,
			Height:     400,
			UIHeight:   100,
			Background: "#ffffff",
		},
		Brush: Brush{
			Size:     paint.DefaultSize,
			Color:    "#000000",
			SizeStep: 4,
			Palette:  []string{"#000000", "#ff0000", "#0000ff"},
		},
		Export: Export{
			Dir:  ".",
			Name: "painting",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown keys %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes cfg as TOML.
func Write(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Canvas.UIHeight < 0 || int(c.Canvas.UIHeight) >= c.Canvas.Height {
		errs = append(errs, fmt.Errorf("ui_height %v must be within the canvas height", c.Canvas.UIHeight))
	}
	if c.Brush.SizeStep <= 0 {
		errs = append(errs, fmt.Errorf("size_step %d must be positive", c.Brush.SizeStep))
	}
	if c.Export.Name == "" {
		errs = append(errs, errors.New("export name must not be empty"))
	}
	if _, err := paint.ParseHex(c.Canvas.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := paint.ParseHex(c.Brush.Color); err != nil {
		errs = append(errs, fmt.Errorf("brush color: %w", err))
	}
	for i, p := range c.Brush.Palette {
		if _, err := paint.ParseHex(p); err != nil {
			errs = append(errs, fmt.Errorf("palette[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// PaintOptions converts the config for paint.NewApp. Colors are assumed valid;
// Load has already checked them.
func (c Config) PaintOptions(logger *log.Logger) paint.Options {
	opts := paint.Options{
		UIHeight: c.Canvas.UIHeight,
		Size:     c.Brush.Size,
		SizeStep: c.Brush.SizeStep,
		Logger:   logger,
	}
	opts.Background, _ = paint.ParseHex(c.Canvas.Background)
	opts.Color, _ = paint.ParseHex(c.Brush.Color)
	for _, p := range c.Brush.Palette {
		rgb, _ := paint.ParseHex(p)
		opts.Palette = append(opts.Palette, rgb)
	}
	return opts
}

// ExportPath is where a quick save of the given format lands.
func (c Config) ExportPath(ext string) string {
	return filepath.Join(c.Export.Dir, c.Export.Name+ext)
}
