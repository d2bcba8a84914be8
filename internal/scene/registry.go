package scene

import "github.com/google/uuid"

// Registry owns every block in the scene, in insertion order.
type Registry struct {
	blocks []*Block
	newID  func() string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{newID: uuid.NewString}
}

// Create allocates a placed block at position with the given color and appends it.
func (r *Registry) Create(position Vec3, color Color) *Block {
	b := &Block{
		ID:            r.newID(),
		Position:      position,
		CurrentColor:  color,
		OriginalColor: color,
		Opacity:       OpacityPlaced,
	}
	r.blocks = append(r.blocks, b)
	return b
}

// Remove deletes b from the registry. It reports whether b was present;
// removing an absent block is a no-op.
func (r *Registry) Remove(b *Block) bool {
	for i, existing := range r.blocks {
		if existing == b {
			r.blocks = append(r.blocks[:i], r.blocks[i+1:]...)
			return true
		}
	}
	return false
}

// All returns the blocks in insertion order. The slice is a copy; the blocks are not.
func (r *Registry) All() []*Block {
	out := make([]*Block, len(r.blocks))
	copy(out, r.blocks)
	return out
}

// Len returns the number of blocks.
func (r *Registry) Len() int {
	return len(r.blocks)
}

// Contains reports whether b is in the registry.
func (r *Registry) Contains(b *Block) bool {
	for _, existing := range r.blocks {
		if existing == b {
			return true
		}
	}
	return false
}
