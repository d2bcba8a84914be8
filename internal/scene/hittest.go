package scene

// HitTester finds the block hit by a point. Implementations may replace the
// linear scan with a spatial structure without touching the Session.
type HitTester interface {
	// Hit returns a block whose center lies strictly within radius of point,
	// or nil. When several blocks qualify, the last one in blocks wins.
	Hit(point Vec3, blocks []*Block, radius float64) *Block
}

// LinearScan is a HitTester that checks every block.
type LinearScan struct{}

// Hit implements HitTester.
func (LinearScan) Hit(point Vec3, blocks []*Block, radius float64) *Block {
	return FindNearest(point, blocks, radius)
}

// FindNearest scans blocks in order and returns the last one whose center is
// closer than radius to point.
func FindNearest(point Vec3, blocks []*Block, radius float64) *Block {
	var hit *Block
	for _, b := range blocks {
		if point.DistanceTo(b.Position) < radius {
			hit = b
		}
	}
	return hit
}
