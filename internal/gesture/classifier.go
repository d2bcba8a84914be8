// Package gesture classifies hand landmarks into discrete gesture labels.
package gesture

import "github.com/ayusman/holoblocks/internal/detector"

// Label is a discrete gesture name as sent on the wire.
type Label string

const (
	LabelNone     Label = "NONE"
	LabelPinch    Label = "PINCH"
	LabelOpenPalm Label = "OPEN_PALM"
)

// Default thresholds in normalized landmark units.
const (
	DefaultPinchThreshold = 0.06
	DefaultPalmThreshold  = 0.15
)

// Classifier labels a single hand pose.
type Classifier struct {
	// PinchThreshold is the maximum thumb-index tip distance for a pinch.
	PinchThreshold float64
	// PalmThreshold is the minimum wrist-fingertip distance for every finger of an open palm.
	PalmThreshold float64
}

// NewClassifier creates a Classifier with the default thresholds.
func NewClassifier() *Classifier {
	return &Classifier{
		PinchThreshold: DefaultPinchThreshold,
		PalmThreshold:  DefaultPalmThreshold,
	}
}

// Classify returns the gesture for hand. Pinch takes priority over open palm.
func (c *Classifier) Classify(hand *detector.HandLandmarks) Label {
	if hand == nil {
		return LabelNone
	}
	if c.isPinch(hand) {
		return LabelPinch
	}
	if c.isOpenPalm(hand) {
		return LabelOpenPalm
	}
	return LabelNone
}

func (c *Classifier) isPinch(hand *detector.HandLandmarks) bool {
	return hand.Between(detector.ThumbTip, detector.IndexTip) < c.PinchThreshold
}

func (c *Classifier) isOpenPalm(hand *detector.HandLandmarks) bool {
	for _, tip := range detector.Fingertips {
		if hand.Between(detector.Wrist, tip) < c.PalmThreshold {
			return false
		}
	}
	return true
}
