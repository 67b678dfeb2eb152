package playback

import (
	"time"

	"github.com/tetofonta/manim-slides/internal/manifest"
)

// SlideChange is emitted once per successful slide load.
//
// Emitted by:
//   - the initial load when the engine starts
//   - Next/Previous/JumpTo navigation
//   - HandleFinished when a transition ends and the engine stages or
//     advances a slide
//
// NOT emitted by:
//   - loads that fail (an ErrorEvent fires instead)
//   - out-of-range targets (a Notice fires instead)
//   - Toggle/SeekTo: playback control on the current slide
type SlideChange struct {
	PreviousIndex int
	Index         int
	Direction     Direction
	Paused        bool
	Slide         manifest.Slide
}

// PositionChange is emitted when an explicit seek occurs.
type PositionChange struct {
	Position time.Duration
}

// Notice is an informational message for the status line, such as
// reaching either end of the presentation.
type Notice struct {
	Message string
}

// ErrorEvent is emitted when a slide asset cannot be loaded.
type ErrorEvent struct {
	Operation string // e.g. "load", "seek"
	Path      string // asset path if applicable
	Err       error
}

// Exhausted is emitted when the final slide finishes and the engine is
// configured to end the presentation there. No further SlideChange
// events follow it.
type Exhausted struct{}
