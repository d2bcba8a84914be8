package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStabilizer_Update(t *testing.T) {
	s := NewStabilizer(3)

	steps := []struct {
		raw  Label
		want Label
	}{
		{LabelPinch, LabelPinch}, // history [P] is uniform
		{LabelNone, LabelPinch},  // [P N] mixed
		{LabelNone, LabelPinch},  // [P N N] mixed
		{LabelNone, LabelNone},   // [N N N]
		{LabelPinch, LabelNone},  // [N N P]
		{LabelPinch, LabelNone},  // [N P P]
		{LabelPinch, LabelPinch}, // [P P P]
	}
	for i, step := range steps {
		assert.Equal(t, step.want, s.Update(step.raw), "step %d: Update(%s)", i, step.raw)
	}
}

func TestStabilizer_Flicker(t *testing.T) {
	s := NewStabilizer(DefaultHistory)
	for i := 0; i < DefaultHistory; i++ {
		s.Update(LabelPinch)
	}

	// A single dropped frame does not release the pinch.
	assert.Equal(t, LabelPinch, s.Update(LabelNone))
	assert.Equal(t, LabelPinch, s.Update(LabelPinch))
}

func TestStabilizer_SingleNoisyPinchIsIgnored(t *testing.T) {
	s := NewStabilizer(DefaultHistory)
	for i := 0; i < DefaultHistory; i++ {
		s.Update(LabelNone)
	}

	assert.Equal(t, LabelNone, s.Update(LabelPinch))
	for i := 0; i < DefaultHistory-2; i++ {
		assert.Equal(t, LabelNone, s.Update(LabelPinch), "agreeing frame %d", i+2)
	}
	assert.Equal(t, LabelPinch, s.Update(LabelPinch))
}

func TestStabilizer_Reset(t *testing.T) {
	s := NewStabilizer(2)
	s.Update(LabelOpenPalm)
	s.Update(LabelOpenPalm)
	require.Equal(t, LabelOpenPalm, s.Current())

	s.Reset()
	assert.Equal(t, LabelNone, s.Current())
	assert.Equal(t, LabelPinch, s.Update(LabelPinch), "first Update after Reset")
}

func TestNewStabilizer_MinimumSize(t *testing.T) {
	s := NewStabilizer(0)
	assert.Equal(t, LabelPinch, s.Update(LabelPinch))
	assert.Equal(t, LabelNone, s.Update(LabelNone))
}
