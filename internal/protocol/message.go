// Package protocol defines the per-frame hand tracking message exchanged between
// the tracker and the scene client.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ayusman/holoblocks/internal/detector"
	"github.com/ayusman/holoblocks/internal/scene"
)

// Gesture labels produced by the tracker.
const (
	GesturePinch    = "PINCH"
	GestureOpenPalm = "OPEN_PALM"
	GestureNone     = "NONE"
)

// ErrMalformed is returned when a message cannot be decoded.
var ErrMalformed = errors.New("malformed frame message")

// Landmark is a normalized [x, y] or [x, y, z] landmark. Only x and y are used by the scene.
type Landmark []float64

// Message is one tracked frame.
type Message struct {
	Image        string     `json:"image,omitempty"` // base64 JPEG, display only
	HandDetected bool       `json:"hand_detected"`
	Gesture      string     `json:"gesture"`
	Landmarks    []Landmark `json:"landmarks"`
}

// Decode parses a JSON message.
func Decode(data []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &m, nil
}

// Encode serializes the message as JSON.
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Tracked reports whether the message carries a usable fingertip: a hand was
// detected and the index fingertip landmark is present with both coordinates.
func (m *Message) Tracked() bool {
	if m == nil || !m.HandDetected || len(m.Landmarks) <= detector.IndexTip {
		return false
	}
	return len(m.Landmarks[detector.IndexTip]) >= 2
}

// Input converts the message into a scene input. Untracked messages become a
// tracking-lost input.
func (m *Message) Input() scene.Input {
	if !m.Tracked() {
		return scene.Lost()
	}
	tip := m.Landmarks[detector.IndexTip]
	return scene.Input{
		HandDetected: true,
		Gesture:      m.Gesture,
		FingertipX:   tip[0],
		FingertipY:   tip[1],
	}
}

// FromHand builds a message for a detected hand.
func FromHand(hand *detector.HandLandmarks, gesture, image string) *Message {
	if hand == nil {
		return NoHand(image)
	}
	landmarks := make([]Landmark, detector.NumLandmarks)
	for i, p := range hand.Points {
		landmarks[i] = Landmark{p.X, p.Y, p.Z}
	}
	return &Message{
		Image:        image,
		HandDetected: true,
		Gesture:      gesture,
		Landmarks:    landmarks,
	}
}

// NoHand builds a message for a frame without a detected hand.
func NoHand(image string) *Message {
	return &Message{
		Image:     image,
		Gesture:   GestureNone,
		Landmarks: []Landmark{},
	}
}
