package scene

// Default palette layout.
const (
	DefaultHoverRadius    = 0.8
	DefaultPaletteY       = -3.5
	DefaultPaletteSpacing = 1.2
)

// DefaultPaletteColors are red, blue, yellow and green.
var DefaultPaletteColors = []Color{Red, Blue, Yellow, Green}

// Palette is the fixed set of selectable colors.
type Palette struct {
	Entries     []PaletteEntry
	HoverRadius float64
}

// NewPalette lays colors out in a horizontal row centered on x=0 at height y.
func NewPalette(colors []Color, y, spacing, hoverRadius float64) Palette {
	startX := -(float64(len(colors)-1) * spacing) / 2
	entries := make([]PaletteEntry, len(colors))
	for i, c := range colors {
		entries[i] = PaletteEntry{
			Color:    c,
			Position: Vec3{X: startX + float64(i)*spacing, Y: y},
		}
	}
	return Palette{Entries: entries, HoverRadius: hoverRadius}
}

// DefaultPalette returns the four-color palette along the bottom of the scene.
func DefaultPalette() Palette {
	return NewPalette(DefaultPaletteColors, DefaultPaletteY, DefaultPaletteSpacing, DefaultHoverRadius)
}

// Select returns the color of the last entry within the hover radius of cursor,
// or current when none is hovered. Selection is sticky.
func (p Palette) Select(cursor Vec3, current Color) Color {
	selected := current
	for i := range p.Entries {
		if cursor.DistanceTo(p.Entries[i].Position) < p.HoverRadius {
			selected = p.Entries[i].Color
		}
	}
	return selected
}
