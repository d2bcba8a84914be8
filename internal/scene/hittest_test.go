package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindNearest(t *testing.T) {
	t.Parallel()

	a := &Block{ID: "a", Position: Vec3{X: 0, Y: 0}}
	b := &Block{ID: "b", Position: Vec3{X: 0.5, Y: 0}}
	c := &Block{ID: "c", Position: Vec3{X: 5, Y: 5}}

	t.Run("no blocks", func(t *testing.T) {
		assert.Nil(t, FindNearest(Vec3{}, nil, 1.0))
	})

	t.Run("nothing within radius", func(t *testing.T) {
		assert.Nil(t, FindNearest(Vec3{X: -3}, []*Block{a, b, c}, 1.0))
	})

	t.Run("radius is exclusive", func(t *testing.T) {
		assert.Nil(t, FindNearest(Vec3{X: 6, Y: 5}, []*Block{c}, 1.0))
	})

	t.Run("single hit", func(t *testing.T) {
		assert.Same(t, c, FindNearest(Vec3{X: 5.2, Y: 5.1}, []*Block{a, b, c}, 1.0))
	})

	t.Run("last match in order wins", func(t *testing.T) {
		assert.Same(t, b, FindNearest(Vec3{X: 0.1}, []*Block{a, b, c}, 1.0))
		assert.Same(t, a, FindNearest(Vec3{X: 0.1}, []*Block{b, a, c}, 1.0))
	})
}

func TestLinearScan_ImplementsHitTester(t *testing.T) {
	var ht HitTester = LinearScan{}
	blk := &Block{Position: Vec3{X: 1}}
	assert.Same(t, blk, ht.Hit(Vec3{X: 1.4}, []*Block{blk}, 1.0))
}
