package detector

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

const epsilon = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point3D
		want float64
	}{
		{"same point", Point3D{X: 1, Y: 2, Z: 3}, Point3D{X: 1, Y: 2, Z: 3}, 0},
		{"3-4-5 triangle", Point3D{}, Point3D{X: 3, Y: 4}, 5},
		{"uses depth", Point3D{}, Point3D{Z: 2}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), epsilon)
		})
	}
}

func TestPresetHands(t *testing.T) {
	t.Run("pinch has thumb touching index", func(t *testing.T) {
		h := PinchLandmarks()
		assert.Less(t, h.Between(ThumbTip, IndexTip), 0.06)
	})

	t.Run("open palm has thumb away from index", func(t *testing.T) {
		h := OpenPalmLandmarks()
		assert.GreaterOrEqual(t, h.Between(ThumbTip, IndexTip), 0.06)
		for _, tip := range Fingertips {
			assert.GreaterOrEqual(t, h.Between(Wrist, tip), 0.15, "fingertip %d", tip)
		}
	})

	t.Run("fist has fingertips near wrist", func(t *testing.T) {
		h := FistLandmarks()
		near := false
		for _, tip := range Fingertips {
			if h.Between(Wrist, tip) < 0.15 {
				near = true
			}
		}
		assert.True(t, near, "expected at least one fingertip within 0.15 of the wrist")
		assert.GreaterOrEqual(t, h.Between(ThumbTip, IndexTip), 0.06)
	})
}

func TestMoveTo(t *testing.T) {
	h := MoveTo(PinchLandmarks(), 0.2, 0.9)

	tip := h.Points[IndexTip]
	assert.InDelta(t, 0.2, tip.X, epsilon)
	assert.InDelta(t, 0.9, tip.Y, epsilon)

	orig := PinchLandmarks()
	assert.InDelta(t, orig.Between(ThumbTip, IndexTip), h.Between(ThumbTip, IndexTip), epsilon,
		"translation keeps the pinch distance")
}

func TestMockDetector(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	t.Run("no hands configured", func(t *testing.T) {
		m := NewMockDetector()
		hands, err := m.Detect(&frame)
		require.NoError(t, err)
		assert.Empty(t, hands)
	})

	t.Run("sequence repeats last entry", func(t *testing.T) {
		m := NewMockDetector()
		m.SetSequence([][]HandLandmarks{
			{PinchLandmarks()},
			nil,
		})

		first, _ := m.Detect(&frame)
		second, _ := m.Detect(&frame)
		third, _ := m.Detect(&frame)

		assert.Len(t, first, 1)
		assert.Empty(t, second)
		assert.Empty(t, third)
	})

	t.Run("returns configured error", func(t *testing.T) {
		m := NewMockDetector()
		want := errors.New("boom")
		m.SetError(want)
		_, err := m.Detect(&frame)
		assert.ErrorIs(t, err, want)
	})
}

func TestParseHands(t *testing.T) {
	t.Run("drops incomplete hands", func(t *testing.T) {
		line := []byte(`{"hands":[{"points":[{"x":0.1,"y":0.2,"z":0}],"handedness":"Left","score":0.9}]}`)
		hands, err := parseHands(line)
		require.NoError(t, err)
		assert.Empty(t, hands)
	})

	t.Run("keeps complete hands", func(t *testing.T) {
		points := make([]string, NumLandmarks)
		for i := range points {
			points[i] = `{"x":0.5,"y":0.5,"z":0}`
		}
		line := []byte(`{"hands":[{"points":[` + strings.Join(points, ",") + `],"handedness":"Right","score":0.8}]}`)

		hands, err := parseHands(line)
		require.NoError(t, err)
		require.Len(t, hands, 1)
		assert.Equal(t, "Right", hands[0].Handedness)
		assert.Equal(t, 0.5, hands[0].Points[IndexTip].X)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := parseHands([]byte("{"))
		assert.Error(t, err)
	})
}
