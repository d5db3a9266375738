package paint

// Renderer draws line segments. Identical segments must look identical.
type Renderer interface {
	StrokeLine(Segment)
}

// Clearer is implemented by renderers that can wipe to a background color.
// Full repaints clear first when the renderer supports it.
type Clearer interface {
	Clear(bg RGB)
}

// Discard draws nothing.
var Discard Renderer = discard{}

type discard struct{}

func (discard) StrokeLine(Segment) {}

// Recorder keeps every call in order instead of drawing.
type Recorder struct {
	Calls  []Segment
	Clears []RGB
}

func (r *Recorder) StrokeLine(s Segment) { r.Calls = append(r.Calls, s) }
func (r *Recorder) Clear(bg RGB)         { r.Clears = append(r.Clears, bg) }

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Clears = nil
}
