package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MyLocalPaint/internal/paint"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "localpaint.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultMatchesPaintDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts := cfg.PaintOptions(nil)
	want := paint.DefaultOptions()
	assert.Equal(t, want.UIHeight, opts.UIHeight)
	assert.Equal(t, want.Background, opts.Background)
	assert.Equal(t, want.Size, opts.Size)
	assert.Equal(t, want.Color, opts.Color)
	assert.Equal(t, want.Palette, opts.Palette)
	assert.Equal(t, want.SizeStep, opts.SizeStep)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
[canvas]
width = 800
background = "#0000ff"

[brush]
size = 8
palette = ["#00ff00", "#ffff00"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Canvas.Width)
	assert.Equal(t, 400, cfg.Canvas.Height)
	assert.Equal(t, float32(100), cfg.Canvas.UIHeight)

	opts := cfg.PaintOptions(nil)
	assert.Equal(t, paint.Blue, opts.Background)
	assert.Equal(t, 8, opts.Size)
	assert.Equal(t, []paint.RGB{{0, 255, 0}, {255, 255, 0}}, opts.Palette)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[canvas\nwidth = 1"},
		{"unknown key", "[canvas]\ndepth = 3"},
		{"bad color", "[brush]\ncolor = \"red\""},
		{"bad palette", "[brush]\npalette = [\"#000000\", \"#12\"]"},
		{"zero width", "[canvas]\nwidth = 0"},
		{"toolbar taller than canvas", "[canvas]\nui_height = 500"},
		{"zero step", "[brush]\nsize_step = 0"},
		{"empty name", "[export]\nname = \"\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Default()))
	path := writeFile(t, buf.String())

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestExportPath(t *testing.T) {
	cfg := Default()
	cfg.Export.Dir = "out"
	assert.Equal(t, filepath.Join("out", "painting.png"), cfg.ExportPath(".png"))
}
