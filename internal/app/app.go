// Package app runs a scene session against a stream of tracked frames.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/holoblocks/internal/protocol"
	"github.com/ayusman/holoblocks/internal/scene"
	"github.com/ayusman/holoblocks/internal/store"
)

// DefaultBuffer is the number of frames queued between the subscriber and the session.
const DefaultBuffer = 64

// Config holds configuration options for the application.
type Config struct {
	Scene  scene.Config
	Store  *store.Store // optional event journal
	Buffer int
}

// Broadcaster publishes rendered snapshots.
type Broadcaster interface {
	Broadcast(msg []byte) error
}

type frame struct {
	input scene.Input
	image string
}

// App owns one scene session. Frames arrive through OnMessage and
// OnDisconnect from any goroutine and are applied in order by Run.
type App struct {
	config    Config
	id        string
	startedAt time.Time
	session   *scene.Session

	frames   chan frame
	done     chan struct{}
	doneOnce sync.Once

	snapshot atomic.Pointer[scene.Snapshot]
	image    atomic.Pointer[string]

	enabled bool
	mu      sync.RWMutex
}

// New creates an App with an empty scene. When a store is configured the
// session is registered in the journal.
func New(config Config) (*App, error) {
	if config.Buffer <= 0 {
		config.Buffer = DefaultBuffer
	}

	a := &App{
		config:    config,
		id:        uuid.NewString(),
		startedAt: time.Now(),
		session:   scene.NewSession(config.Scene),
		frames:    make(chan frame, config.Buffer),
		done:      make(chan struct{}),
		enabled:   true,
	}

	if config.Store != nil {
		sess := &store.Session{ID: a.id, StartedAt: a.startedAt}
		if err := config.Store.Sessions().Create(sess); err != nil {
			return nil, fmt.Errorf("failed to register session: %w", err)
		}
	}

	a.snapshot.Store(a.session.Snapshot(a.id))
	return a, nil
}

// SessionID returns the identifier of the running session.
func (a *App) SessionID() string {
	return a.id
}

// StartedAt returns when the session began.
func (a *App) StartedAt() time.Time {
	return a.startedAt
}

// Store returns the event journal, or nil when journaling is disabled.
func (a *App) Store() *store.Store {
	return a.config.Store
}

// SetEnabled enables or disables gesture input. While disabled every frame
// is treated as tracking lost.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture input is currently applied.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// Snapshot returns the most recently published scene state.
func (a *App) Snapshot() *scene.Snapshot {
	return a.snapshot.Load()
}

// Image returns the latest camera image carried by a frame, or "" if none arrived yet.
func (a *App) Image() string {
	if p := a.image.Load(); p != nil {
		return *p
	}
	return ""
}

// OnMessage decodes a tracker message and queues it. A malformed message is
// queued as tracking lost.
func (a *App) OnMessage(data []byte) {
	msg, err := protocol.Decode(data)
	if err != nil {
		log.Printf("Treating frame as tracking lost: %v", err)
		a.enqueue(frame{input: scene.Lost()})
		return
	}
	a.enqueue(frame{input: msg.Input(), image: msg.Image})
}

// OnDisconnect queues a tracking-lost frame so a held block is released.
func (a *App) OnDisconnect(err error) {
	a.enqueue(frame{input: scene.Lost()})
}

func (a *App) enqueue(f frame) {
	select {
	case a.frames <- f:
	case <-a.done:
	}
}

// Run applies queued frames until ctx is cancelled. Frames still queued at
// that point are discarded and one tracking-lost frame is applied, so the
// last published snapshot holds nothing.
func (a *App) Run(ctx context.Context) error {
	defer a.doneOnce.Do(func() { close(a.done) })

	for {
		select {
		case <-ctx.Done():
			a.Process(scene.Lost())
			return ctx.Err()
		case f := <-a.frames:
			if f.image != "" {
				img := f.image
				a.image.Store(&img)
			}
			a.Process(f.input)
		}
	}
}

// Process advances the session by one frame, publishes the new snapshot and
// journals the resulting events. Only one goroutine may call Process; Run
// does so for frames delivered through OnMessage.
func (a *App) Process(in scene.Input) []scene.Event {
	if !a.IsEnabled() {
		in = scene.Lost()
	}

	events := a.session.ProcessFrame(in)
	a.snapshot.Store(a.session.Snapshot(a.id))

	for _, e := range events {
		logEvent(e)
	}
	if a.config.Store != nil && len(events) > 0 {
		if err := a.config.Store.Events().Append(a.id, events); err != nil {
			log.Printf("Failed to journal %d events: %v", len(events), err)
		}
	}
	return events
}

func logEvent(e scene.Event) {
	switch e.Kind {
	case scene.EventColorSelected:
		log.Printf("Selected color %s", e.Color)
	case scene.EventWarning, scene.EventWarningCleared:
		log.Printf("Block %s %s", e.BlockID, e.Kind)
	default:
		log.Printf("Block %s %s at (%.2f, %.2f, %.2f)", e.BlockID, e.Kind,
			e.Position.X, e.Position.Y, e.Position.Z)
	}
}

// RunRender broadcasts the latest snapshot every interval until ctx is cancelled.
func (a *App) RunRender(ctx context.Context, interval time.Duration, b Broadcaster) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			data, err := json.Marshal(a.Snapshot())
			if err != nil {
				return fmt.Errorf("failed to encode snapshot: %w", err)
			}
			if err := b.Broadcast(data); err != nil {
				return err
			}
		}
	}
}
