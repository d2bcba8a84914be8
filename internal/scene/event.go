package scene

// EventKind names a lifecycle transition produced by the Session.
type EventKind string

const (
	EventCreated        EventKind = "created"
	EventGrabbed        EventKind = "grabbed"
	EventWarning        EventKind = "warning"
	EventWarningCleared EventKind = "warning_cleared"
	EventDropped        EventKind = "dropped"
	EventDeleted        EventKind = "deleted"
	EventReleased       EventKind = "released" // dropped because tracking was lost
	EventColorSelected  EventKind = "color_selected"
)

// Event describes one transition. BlockID is empty for color selection.
type Event struct {
	Kind     EventKind `json:"kind"`
	BlockID  string    `json:"block_id,omitempty"`
	Position Vec3      `json:"position"`
	Color    Color     `json:"color"`
}
