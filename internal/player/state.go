package player

// State is the run state of the media primitive.
//
// There are only three states. A freshly loaded asset sits in Paused at
// position zero; natural completion lands in Paused at the end with the
// finished flag set. Stopped means no asset is loaded at all.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if an asset is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
