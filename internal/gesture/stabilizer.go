package gesture

// DefaultHistory is the number of consecutive frames that must agree before
// the stable label changes.
const DefaultHistory = 5

// Stabilizer debounces raw per-frame labels. The reported label only changes
// once the last N raw labels are all equal to the newest one.
type Stabilizer struct {
	size    int
	history []Label
	current Label
}

// NewStabilizer creates a Stabilizer over the last size frames.
// A size below 1 disables smoothing.
func NewStabilizer(size int) *Stabilizer {
	if size < 1 {
		size = 1
	}
	return &Stabilizer{
		size:    size,
		history: make([]Label, 0, size),
		current: LabelNone,
	}
}

// Update records raw and returns the stable label.
func (s *Stabilizer) Update(raw Label) Label {
	if len(s.history) == s.size {
		copy(s.history, s.history[1:])
		s.history = s.history[:s.size-1]
	}
	s.history = append(s.history, raw)

	for _, l := range s.history {
		if l != raw {
			return s.current
		}
	}
	s.current = raw
	return s.current
}

// Current returns the stable label without recording anything.
func (s *Stabilizer) Current() Label {
	return s.current
}

// Reset clears the history and returns to LabelNone.
func (s *Stabilizer) Reset() {
	s.history = s.history[:0]
	s.current = LabelNone
}
