package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color packed as 0xRRGGBB.
type Color uint32

// Common colors.
const (
	Red    Color = 0xff0000
	Green  Color = 0x00ff00
	Blue   Color = 0x0000ff
	Yellow Color = 0xffff00
	White  Color = 0xffffff
)

// ParseColor parses a "#rrggbb" hex string.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b)), nil
}

// Colorful converts c to a colorful.Color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64((c>>16)&0xff) / 255.0,
		G: float64((c>>8)&0xff) / 255.0,
		B: float64(c&0xff) / 255.0,
	}
}

// Hex returns the color formatted as "#rrggbb".
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color as a hex string so snapshots read naturally in JSON.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a "#rrggbb" hex string.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
