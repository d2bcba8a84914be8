package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Create(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	b := r.Create(Vec3{X: 1, Y: 2}, Blue)

	require.NotNil(t, b)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, Vec3{X: 1, Y: 2}, b.Position)
	assert.Equal(t, Blue, b.CurrentColor)
	assert.Equal(t, Blue, b.OriginalColor)
	assert.Equal(t, OpacityPlaced, b.Opacity)
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.Contains(b))
}

func TestRegistry_InsertionOrder(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	first := r.Create(Vec3{}, Red)
	second := r.Create(Vec3{}, Green)
	third := r.Create(Vec3{}, Blue)

	all := r.All()
	require.Len(t, all, 3)
	assert.Same(t, first, all[0])
	assert.Same(t, second, all[1])
	assert.Same(t, third, all[2])
}

func TestRegistry_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes present block", func(t *testing.T) {
		r := NewRegistry()
		a := r.Create(Vec3{}, Red)
		b := r.Create(Vec3{}, Green)

		assert.True(t, r.Remove(a))
		assert.Equal(t, 1, r.Len())
		assert.False(t, r.Contains(a))
		assert.Same(t, b, r.All()[0])
	})

	t.Run("absent block is a no-op", func(t *testing.T) {
		r := NewRegistry()
		a := r.Create(Vec3{}, Red)
		stranger := &Block{ID: "stranger"}

		assert.False(t, r.Remove(stranger))
		assert.Equal(t, 1, r.Len())
		assert.True(t, r.Contains(a))
	})

	t.Run("double remove is a no-op", func(t *testing.T) {
		r := NewRegistry()
		a := r.Create(Vec3{}, Red)

		assert.True(t, r.Remove(a))
		assert.False(t, r.Remove(a))
		assert.Zero(t, r.Len())
	})
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Create(Vec3{}, Red)

	all := r.All()
	all[0] = nil

	assert.NotNil(t, r.All()[0])
}
