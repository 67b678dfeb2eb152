package player

import "time"

// BoundaryEpsilon is the tolerance used when classifying a playback
// position as "at the start" or "at the end" of an asset. Exact
// comparisons are fragile under player rounding, so anything within
// this window of a boundary counts as being on it.
const BoundaryEpsilon = 50 * time.Millisecond

// Interface is the single-stream, forward-only media primitive the
// playback engine drives. Implementations only ever play one asset in
// one direction; bidirectional navigation is synthesized above this
// interface by loading reverse-rendered assets.
type Interface interface {
	// Load opens an asset and leaves it paused at position zero with
	// a single playthrough configured.
	Load(path string) error
	Play()
	Pause()
	Toggle()
	Stop()

	// SetLoops sets how many playthroughs remain; -1 loops forever.
	SetLoops(n int)
	// SetRate sets the playback rate multiplier (1.0 = realtime).
	SetRate(rate float64)
	SeekTo(pos time.Duration)

	State() State
	Position() time.Duration
	Duration() time.Duration

	// Finished reports whether the loaded asset reached its natural
	// end (end-of-media status). A manual seek to the end does not
	// set it; Load, Play and SeekTo clear it.
	Finished() bool
	// FinishedChan delivers one signal per natural completion.
	FinishedChan() <-chan struct{}
}

// Verify implementations at compile time.
var (
	_ Interface = (*Clock)(nil)
	_ Interface = (*Mock)(nil)
)
