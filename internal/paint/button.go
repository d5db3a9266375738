package paint

// Button is a rectangular hit target drawn on the canvas toolbar.
type Button struct {
	X, Y, W, H float32
	Label      string
	OnClick    func()

	// Swatch buttons are filled with Color, which is also the brush color they select.
	Swatch bool
	Color  RGB
}

func NewButton(x, y, w, h float32, label string, onClick func()) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Label: label, OnClick: onClick}
}

func NewSwatch(x, y, w, h float32, c RGB, onClick func()) *Button {
	return &Button{X: x, Y: y, W: w, H: h, OnClick: onClick, Swatch: true, Color: c}
}

// Contains reports whether (px, py) lies on the closed rectangle.
func (b *Button) Contains(px, py float32) bool {
	return px >= b.X && px <= b.X+b.W &&
		py >= b.Y && py <= b.Y+b.H
}

func (b *Button) Click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}
