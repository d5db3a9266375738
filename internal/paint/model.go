package paint

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is a color triple. It is an array so every assignment copies it.
type RGB [3]uint8

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Blue  = RGB{0, 0, 255}
)

// NRGBA converts the triple to an opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

// RGBFromColor drops alpha from any color.Color, e.g. the result of a color picker.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

type Kind int

const (
	KindBrush Kind = iota
	KindEraser
)

func (k Kind) String() string {
	switch k {
	case KindBrush:
		return "brush"
	case KindEraser:
		return "eraser"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Stroke is one recorded line segment. Eraser strokes have no color of their
// own: they are painted with whatever the background is when they are rendered.
type Stroke struct {
	X1, Y1 float32
	X2, Y2 float32
	Kind   Kind
	Color  RGB
	Weight float32
}

// Segment is what a Renderer is asked to draw.
type Segment struct {
	X1, Y1 float32
	X2, Y2 float32
	Color  RGB
	Weight float32
}

// Segment resolves the stroke against the given background color.
func (s Stroke) Segment(bg RGB) Segment {
	c := s.Color
	if s.Kind == KindEraser {
		c = bg
	}
	return Segment{X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2, Color: c, Weight: s.Weight}
}
