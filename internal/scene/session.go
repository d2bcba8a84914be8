package scene

import "fmt"

// Status strings shown to the user.
const (
	StatusNoHand   = "No Hand Detected"
	StatusDeleting = "⚠️ DELETING BLOCK ⚠️"
)

// GesturePinch is the only gesture label the Session acts on.
const GesturePinch = "PINCH"

// Default interaction parameters.
const (
	DefaultGrabRadius = 1.0
	DefaultBinRadius  = 1.5
)

// DefaultBinPosition is where the delete bin sits.
var DefaultBinPosition = Vec3{X: 5, Y: 5, Z: 0}

// Config holds the tunable parameters of a Session.
type Config struct {
	Mapper       Mapper
	Palette      Palette
	GrabRadius   float64
	BinRadius    float64
	BinPosition  Vec3
	DefaultColor Color
	WarningColor Color
	HitTester    HitTester
}

// DefaultConfig returns the reference scene layout.
func DefaultConfig() Config {
	return Config{
		Mapper:       DefaultMapper(),
		Palette:      DefaultPalette(),
		GrabRadius:   DefaultGrabRadius,
		BinRadius:    DefaultBinRadius,
		BinPosition:  DefaultBinPosition,
		DefaultColor: Green,
		WarningColor: Red,
		HitTester:    LinearScan{},
	}
}

// Input is one frame as seen by the Session. Fingertip is only meaningful
// when HandDetected is true.
type Input struct {
	HandDetected bool
	Gesture      string
	FingertipX   float64
	FingertipY   float64
}

// Lost returns the input used when tracking is unavailable.
func Lost() Input {
	return Input{}
}

// Status is the user-visible status line.
type Status struct {
	Text  string `json:"text"`
	Color Color  `json:"color"`
}

// Session is the gesture state machine together with the scene it mutates.
// It is not safe for concurrent use; feed it frames from a single goroutine.
type Session struct {
	cfg      Config
	registry *Registry

	cursor    Vec3
	selected  Color
	lastPinch bool
	grabbed   *Block
	warning   bool
	status    Status
	frames    uint64
}

// NewSession creates a Session with an empty registry.
func NewSession(cfg Config) *Session {
	if cfg.HitTester == nil {
		cfg.HitTester = LinearScan{}
	}
	return &Session{
		cfg:      cfg,
		registry: NewRegistry(),
		selected: cfg.DefaultColor,
		status:   Status{Text: StatusNoHand, Color: White},
	}
}

// ProcessFrame advances the state machine by one frame and returns the
// transitions it produced, in order.
func (s *Session) ProcessFrame(in Input) []Event {
	s.frames++
	if !in.HandDetected {
		return s.trackingLost()
	}

	var events []Event
	s.status = Status{Text: fmt.Sprintf("Gesture: %s", in.Gesture), Color: White}
	s.cursor = s.cfg.Mapper.Map(in.FingertipX, in.FingertipY)

	if c := s.cfg.Palette.Select(s.cursor, s.selected); c != s.selected {
		s.selected = c
		events = append(events, Event{Kind: EventColorSelected, Position: s.cursor, Color: c})
	}

	pinching := in.Gesture == GesturePinch

	if pinching && !s.lastPinch {
		events = append(events, s.pinchStart())
	}

	if pinching && s.grabbed != nil {
		if e, ok := s.hold(); ok {
			events = append(events, e)
		}
	}

	if !pinching && s.lastPinch && s.grabbed != nil {
		events = append(events, s.release())
	}

	s.lastPinch = pinching
	return events
}

func (s *Session) pinchStart() Event {
	if hit := s.cfg.HitTester.Hit(s.cursor, s.registry.All(), s.cfg.GrabRadius); hit != nil {
		s.grabbed = hit
		hit.Opacity = OpacityHeld
		return s.event(EventGrabbed, hit)
	}
	b := s.registry.Create(s.cursor, s.selected)
	b.Opacity = OpacityHeld
	s.grabbed = b
	return s.event(EventCreated, b)
}

// hold drags the grabbed block and updates the bin warning preview.
func (s *Session) hold() (Event, bool) {
	b := s.grabbed
	b.Position = s.cursor

	if s.nearBin() {
		b.CurrentColor = s.cfg.WarningColor
		s.status = Status{Text: StatusDeleting, Color: s.cfg.WarningColor}
		if !s.warning {
			s.warning = true
			return s.event(EventWarning, b), true
		}
		return Event{}, false
	}

	b.CurrentColor = b.OriginalColor
	if s.warning {
		s.warning = false
		return s.event(EventWarningCleared, b), true
	}
	return Event{}, false
}

func (s *Session) release() Event {
	b := s.grabbed
	s.grabbed = nil
	s.warning = false

	if s.nearBin() {
		s.registry.Remove(b)
		return s.event(EventDeleted, b)
	}
	b.restore()
	return s.event(EventDropped, b)
}

func (s *Session) trackingLost() []Event {
	s.status = Status{Text: StatusNoHand, Color: White}
	s.lastPinch = false
	s.warning = false

	b := s.grabbed
	if b == nil {
		return nil
	}
	s.grabbed = nil
	b.restore()
	return []Event{s.event(EventReleased, b)}
}

func (s *Session) nearBin() bool {
	return s.cursor.DistanceTo(s.cfg.BinPosition) < s.cfg.BinRadius
}

func (s *Session) event(kind EventKind, b *Block) Event {
	return Event{Kind: kind, BlockID: b.ID, Position: b.Position, Color: b.CurrentColor}
}

// Cursor returns the last mapped fingertip position.
func (s *Session) Cursor() Vec3 { return s.cursor }

// SelectedColor returns the color new blocks are created with.
func (s *Session) SelectedColor() Color { return s.selected }

// Grabbed returns the block being held, or nil.
func (s *Session) Grabbed() *Block { return s.grabbed }

// Status returns the current status line.
func (s *Session) Status() Status { return s.status }

// Registry returns the block registry.
func (s *Session) Registry() *Registry { return s.registry }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }
