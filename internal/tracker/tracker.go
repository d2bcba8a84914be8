// Package tracker turns camera frames into hand tracking messages.
package tracker

import (
	"encoding/base64"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ayusman/holoblocks/internal/capture"
	"github.com/ayusman/holoblocks/internal/detector"
	"github.com/ayusman/holoblocks/internal/gesture"
	"github.com/ayusman/holoblocks/internal/protocol"
)

// Config holds the pipeline settings.
type Config struct {
	FPS            int
	JPEGQuality    int
	PinchThreshold float64
	PalmThreshold  float64
	History        int
}

// DefaultConfig returns the settings used by the reference tracker.
func DefaultConfig() Config {
	return Config{
		FPS:            capture.DefaultFPS,
		JPEGQuality:    capture.DefaultJPEGQuality,
		PinchThreshold: gesture.DefaultPinchThreshold,
		PalmThreshold:  gesture.DefaultPalmThreshold,
		History:        gesture.DefaultHistory,
	}
}

// Broadcaster receives every encoded message.
type Broadcaster interface {
	Broadcast(msg []byte) error
}

// Tracker reads the camera at a fixed rate and broadcasts one message per frame.
type Tracker struct {
	config     Config
	camera     capture.Camera
	detector   detector.Detector
	classifier *gesture.Classifier
	stabilizer *gesture.Stabilizer
	out        Broadcaster

	latest atomic.Pointer[[]byte]

	mu     sync.Mutex
	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates a Tracker. Zero config fields take their defaults.
func New(config Config, camera capture.Camera, det detector.Detector, out Broadcaster) *Tracker {
	def := DefaultConfig()
	if config.FPS <= 0 {
		config.FPS = def.FPS
	}
	if config.JPEGQuality <= 0 {
		config.JPEGQuality = def.JPEGQuality
	}
	if config.PinchThreshold <= 0 {
		config.PinchThreshold = def.PinchThreshold
	}
	if config.PalmThreshold <= 0 {
		config.PalmThreshold = def.PalmThreshold
	}
	if config.History <= 0 {
		config.History = def.History
	}

	return &Tracker{
		config:   config,
		camera:   camera,
		detector: det,
		classifier: &gesture.Classifier{
			PinchThreshold: config.PinchThreshold,
			PalmThreshold:  config.PalmThreshold,
		},
		stabilizer: gesture.NewStabilizer(config.History),
		out:        out,
	}
}

// Start opens the camera and runs the pipeline in the background.
func (t *Tracker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopCh != nil {
		return nil
	}
	if err := t.camera.Open(); err != nil {
		return err
	}
	t.camera.SetFPS(t.config.FPS)

	t.stopCh = make(chan struct{})
	t.doneCh = make(chan struct{})
	go t.run(t.stopCh, t.doneCh)

	log.Printf("Tracker started at %d FPS", t.config.FPS)
	return nil
}

// Stop halts the pipeline and releases the camera and detector.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopCh != nil {
		close(t.stopCh)
		<-t.doneCh
		t.stopCh = nil
	}

	if err := t.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	if err := t.detector.Close(); err != nil {
		log.Printf("Error closing detector: %v", err)
	}

	log.Println("Tracker stopped")
}

func (t *Tracker) run(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(time.Second / time.Duration(t.config.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if _, err := t.Step(); err != nil {
				log.Printf("Error processing frame: %v", err)
			}
		}
	}
}

// Step processes a single camera frame and broadcasts the resulting message.
func (t *Tracker) Step() (*protocol.Message, error) {
	frame, err := t.camera.ReadFrame()
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	defer frame.Close()

	hands, err := t.detector.Detect(frame)
	if err != nil {
		return nil, fmt.Errorf("detect hands: %w", err)
	}

	var image string
	if jpeg, err := capture.EncodeJPEG(frame, t.config.JPEGQuality); err != nil {
		log.Printf("Error encoding frame: %v", err)
	} else {
		t.latest.Store(&jpeg)
		image = base64.StdEncoding.EncodeToString(jpeg)
	}

	// Frames without a hand leave the stabilizer untouched, so a hand that
	// reappears must agree for the full history before its label changes.
	var msg *protocol.Message
	if len(hands) == 0 {
		msg = protocol.NoHand(image)
	} else {
		hand := &hands[0]
		label := t.stabilizer.Update(t.classifier.Classify(hand))
		msg = protocol.FromHand(hand, string(label), image)
	}

	data, err := msg.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	if err := t.out.Broadcast(data); err != nil {
		return msg, fmt.Errorf("broadcast: %w", err)
	}
	return msg, nil
}

// Latest returns the most recent JPEG frame, or nil before the first one.
func (t *Tracker) Latest() []byte {
	if p := t.latest.Load(); p != nil {
		return *p
	}
	return nil
}
