package tabs

// InteractionKind distinguishes the user gestures that select a tab.
type InteractionKind string

const (
	InteractionTap       InteractionKind = "tap"
	InteractionLongPress InteractionKind = "longPress"
)

// IsValid checks if the interaction kind is valid.
func (k InteractionKind) IsValid() bool {
	switch k {
	case InteractionTap, InteractionLongPress:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k InteractionKind) String() string {
	return string(k)
}

// InteractionEvent is emitted toward the host when a user gesture selects
// or long-presses a tab. Events are emitted, never stored; programmatic
// selection does not produce one.
type InteractionEvent struct {
	TabID string
	Kind  InteractionKind
}
