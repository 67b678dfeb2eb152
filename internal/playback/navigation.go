package playback

import (
	"github.com/tetofonta/manim-slides/internal/manifest"
	"github.com/tetofonta/manim-slides/internal/player"
)

// phase classifies the engine's observable state into the handful of
// situations the navigation rules distinguish. Keying the decision
// tables on a named phase instead of raw position/duration reads keeps
// the rules exhaustive and testable.
type phase int

const (
	phaseIdle phase = iota
	phasePlayingForward
	phasePlayingBackward
	// phaseFinished: paused because the asset reached its natural end.
	phaseFinished
	// phasePausedAtStart: staged at the first frame, usually by a
	// completion handler preparing the next transition.
	phasePausedAtStart
	// phasePausedAtEnd: parked on the last frame by a manual skip, not
	// by natural completion.
	phasePausedAtEnd
	phasePausedMid
)

func (e *Engine) phaseLocked() phase {
	switch {
	case e.player.State() == player.Stopped:
		return phaseIdle
	case e.player.State() == player.Playing:
		if e.direction == Backward {
			return phasePlayingBackward
		}
		return phasePlayingForward
	case e.player.Finished():
		return phaseFinished
	case e.atStartLocked():
		return phasePausedAtStart
	case e.atEndLocked():
		return phasePausedAtEnd
	default:
		return phasePausedMid
	}
}

// Next advances the presentation by one step.
func (e *Engine) Next() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextLocked()
}

func (e *Engine) nextLocked() {
	switch e.phaseLocked() {
	case phasePlayingForward:
		if e.currentSlideLocked().Loop {
			// Leave the loop for the next transition without pausing;
			// looping slides flow continuously into their successor.
			e.loadLocked(e.index+1, false, Forward, false)
			return
		}
		// Skip the rest of the animation and hold its final frame. The
		// manual seek does not count as a natural end, so no
		// auto-advance fires.
		e.player.Pause()
		e.player.SeekTo(e.player.Duration())

	case phasePlayingBackward:
		if e.currentSlideLocked().Loop {
			e.loadLocked(e.index+1, false, Forward, false)
			return
		}
		// The cursor was already decremented when the reverse
		// playthrough started, so resetting to index+1 paused lands
		// back on the slide it started from.
		e.loadLocked(e.index+1, true, Forward, false)

	case phaseFinished:
		// The transition ran to its end and nothing staged a
		// follow-up; start the next one directly.
		e.loadLocked(e.index+1, false, Forward, false)

	case phasePausedAtStart:
		// A previous step staged this slide paused at its first frame;
		// play it.
		e.loadLocked(e.index, false, Forward, false)

	case phasePausedAtEnd:
		e.loadLocked(e.index+1, false, Forward, false)

	case phasePausedMid:
		e.player.Play()
	}
}

// Previous steps the presentation back by one.
func (e *Engine) Previous() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.previousLocked()
}

func (e *Engine) previousLocked() {
	switch ph := e.phaseLocked(); ph {
	case phasePlayingForward, phasePlayingBackward:
		if e.currentSlideLocked().Loop {
			// Play the loop backwards from the mirrored position so
			// the motion reverses seamlessly.
			e.player.Pause()
			rev := e.player.Duration() - e.player.Position()
			e.loadLocked(e.index, false, Backward, false)
			e.player.SeekTo(rev)
			return
		}
		// Any other playthrough rewinds to this slide staged at its
		// first frame.
		e.loadLocked(e.index, true, Forward, false)

	case phaseFinished, phasePausedAtStart, phasePausedAtEnd, phasePausedMid:
		if e.index <= 0 {
			e.broadcast(func(s *Subscription) { s.sendNotice("no previous slide") })
			return
		}
		if ph == phaseFinished {
			// Nothing staged past this slide, so play its reverse
			// asset and move the cursor to where the playthrough
			// leads.
			if e.loadLocked(e.index, false, Backward, false) == nil {
				e.index--
			}
			return
		}
		// This slide was staged paused for us, so we are logically one
		// slide back already: reverse the transition before it. The
		// cursor ends up one past the slide the reverse asset leads
		// into, which the completion handler reconciles.
		if e.loadLocked(e.index-1, false, Backward, false) == nil {
			e.index--
		}
	}
}

func (e *Engine) currentSlideLocked() manifest.Slide {
	if e.index < 0 {
		return e.slides[0]
	}
	return e.slides[e.index]
}
