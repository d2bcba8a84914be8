package scene

// Default scene spans. A normalized landmark maps to x in [-7, 7] and y in [-4, 4].
const (
	DefaultWidth  = 14.0
	DefaultHeight = 8.0
)

// Mapper converts normalized landmark coordinates into scene space.
type Mapper struct {
	Width  float64 // horizontal scene span
	Height float64 // vertical scene span
}

// DefaultMapper returns a Mapper using the default scene spans.
func DefaultMapper() Mapper {
	return Mapper{Width: DefaultWidth, Height: DefaultHeight}
}

// Map converts a normalized (x, y) landmark into a scene position on the z=0 plane.
// Image y grows downward while scene y grows upward, so the vertical axis is inverted.
// Inputs outside [0,1] extrapolate linearly.
func (m Mapper) Map(x, y float64) Vec3 {
	return Vec3{
		X: x*m.Width - m.Width/2,
		Y: (1-y)*m.Height - m.Height/2,
		Z: 0,
	}
}
