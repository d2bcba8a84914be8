package scene

// Opacity values for blocks.
const (
	OpacityHeld   = 0.5
	OpacityPlaced = 1.0
)

// Object is any object placed in the scene. The set of implementations is closed:
// *PaletteEntry and *Block.
type Object interface {
	Center() Vec3
	sceneObject()
}

// PaletteEntry is a fixed color marker. Hovering the cursor near it selects its color.
type PaletteEntry struct {
	Color    Color `json:"color"`
	Position Vec3  `json:"position"`
}

// Center returns the entry position.
func (p *PaletteEntry) Center() Vec3 { return p.Position }

func (*PaletteEntry) sceneObject() {}

// Block is a user-created cube.
type Block struct {
	ID            string  `json:"id"`
	Position      Vec3    `json:"position"`
	CurrentColor  Color   `json:"color"`
	OriginalColor Color   `json:"original_color"`
	Opacity       float64 `json:"opacity"`
}

// Center returns the block position.
func (b *Block) Center() Vec3 { return b.Position }

func (*Block) sceneObject() {}

// restore puts the block back into its placed visual state.
func (b *Block) restore() {
	b.Opacity = OpacityPlaced
	b.CurrentColor = b.OriginalColor
}
