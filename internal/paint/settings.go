package paint

const (
	MinSize     = 2
	MaxSize     = 50
	DefaultSize = 20
)

// ToolSettings holds the brush size and color. A single instance is shared by
// every tool, so a change is seen by whichever tool is active.
type ToolSettings struct {
	size  int
	color RGB
}

func NewToolSettings() *ToolSettings {
	return &ToolSettings{size: DefaultSize, color: Black}
}

func (s *ToolSettings) Size() int  { return s.size }
func (s *ToolSettings) Color() RGB { return s.color }

// SetSize clamps v into [MinSize, MaxSize].
func (s *ToolSettings) SetSize(v int) {
	s.size = max(MinSize, min(MaxSize, v))
}

func (s *ToolSettings) SetColor(c RGB) {
	s.color = c
}
