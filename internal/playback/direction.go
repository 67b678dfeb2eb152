package playback

// Direction is the logical direction of the current playthrough.
//
// The media primitive only ever plays forward; Backward means the
// engine loaded the reverse-rendered asset of a slide, so wall-clock
// progress maps to logical regression through the presentation.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}
