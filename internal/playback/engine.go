package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/tetofonta/manim-slides/internal/manifest"
	"github.com/tetofonta/manim-slides/internal/player"
)

// Options configures a new engine.
type Options struct {
	// StartIndex is the flat slide index to open on.
	StartIndex int
	// StartPaused stages the first slide instead of playing it.
	StartPaused bool
	// ExitAfterLast ends the presentation when the final slide
	// finishes instead of holding its last frame.
	ExitAfterLast bool
	// Rate is the playback rate multiplier; 0 means realtime.
	Rate float64
}

// Engine drives a forward-only media player through a flattened slide
// sequence, synthesizing bidirectional navigation from each slide's
// forward and reverse-rendered assets.
//
// The engine tracks one logical cursor: the slide index plus the
// playthrough direction. All mutation goes through Load, which is the
// single place the cursor moves and the single source of SlideChange
// events.
type Engine struct {
	mu sync.RWMutex

	player player.Interface
	slides []manifest.Slide

	index         int
	direction     Direction
	rate          float64
	startPaused   bool
	exitAfterLast bool

	subs   []*Subscription
	subsMu sync.RWMutex

	done   chan struct{}
	closed bool
}

// New creates an engine over the flattened slide sequence. Call Start
// to load the first slide and begin watching for transition ends.
func New(p player.Interface, slides []manifest.Slide, opts Options) (*Engine, error) {
	if len(slides) == 0 {
		return nil, fmt.Errorf("playback: empty slide sequence")
	}
	if opts.StartIndex < 0 || opts.StartIndex >= len(slides) {
		return nil, fmt.Errorf("playback: start slide %d out of range [0,%d)", opts.StartIndex, len(slides))
	}
	rate := opts.Rate
	if rate <= 0 {
		rate = 1.0
	}
	return &Engine{
		player:        p,
		slides:        slides,
		index:         opts.StartIndex,
		direction:     Forward,
		rate:          rate,
		startPaused:   opts.StartPaused,
		exitAfterLast: opts.ExitAfterLast,
		done:          make(chan struct{}),
	}, nil
}

// Start loads the starting slide and begins consuming the player's
// end-of-media signals. The StartPaused option decides whether the
// first transition plays immediately.
func (e *Engine) Start() error {
	e.mu.Lock()
	err := e.loadLocked(e.index, e.startPaused, Forward, false)
	e.mu.Unlock()
	if err != nil {
		return err
	}
	go e.watchFinished()
	return nil
}

func (e *Engine) watchFinished() {
	for {
		select {
		case <-e.done:
			return
		case <-e.player.FinishedChan():
			e.HandleFinished()
		}
	}
}

// HandleFinished reacts to the current transition reaching its natural
// end: it settles loop state, fires auto-advance, ends the
// presentation after the last slide when configured, and otherwise
// stages the next slide paused at its first frame.
func (e *Engine) HandleFinished() {
	e.mu.Lock()
	defer e.mu.Unlock()

	// A reverse playthrough from the very first slide leaves the
	// cursor logically before the sequence; finishing it stages slide
	// zero.
	if e.index < 0 {
		e.player.SetLoops(1)
		e.loadLocked(0, true, Forward, false)
		return
	}

	slide := e.slides[e.index]
	forward := e.direction == Forward

	// A finished playthrough never keeps looping on its own.
	if !slide.Loop || !forward {
		e.player.SetLoops(1)
	}

	if slide.AutoNext && forward {
		e.nextLocked()
		return
	}

	if e.index == len(e.slides)-1 && e.exitAfterLast {
		e.broadcast(func(s *Subscription) { s.sendExhausted() })
		return
	}

	if !forward && slide.Loop {
		e.loadLocked(e.index, true, Forward, false)
		return
	}
	e.loadLocked(e.index+1, true, Forward, false)
}

// loadLocked loads the index-th slide and moves the cursor. Targets
// past either end of the sequence produce a notice and leave the
// current slide untouched.
func (e *Engine) loadLocked(index int, paused bool, dir Direction, seekEnd bool) error {
	if index >= len(e.slides) {
		e.broadcast(func(s *Subscription) { s.sendNotice("no more slides") })
		return nil
	}
	if index < 0 {
		e.broadcast(func(s *Subscription) { s.sendNotice("no previous slide") })
		return nil
	}

	slide := e.slides[index]
	asset := slide.File
	if dir == Backward {
		asset = slide.RevFile
	}

	// The cursor moves only once the asset is actually open, so a
	// failed load leaves the last good state in place and the next
	// command retries from it.
	if err := e.player.Load(asset); err != nil {
		e.broadcast(func(s *Subscription) {
			s.sendError(ErrorEvent{Operation: "load", Path: asset, Err: err})
		})
		return err
	}
	prev := e.index
	e.index = index
	e.direction = dir

	// Reverse assets never loop: the loop flag describes the forward
	// playthrough of the slide.
	if slide.Loop && dir == Forward {
		e.player.SetLoops(-1)
	} else {
		e.player.SetLoops(1)
	}
	e.player.SetRate(e.rate)

	if seekEnd {
		e.player.SeekTo(e.player.Duration())
	}
	if paused {
		e.player.Pause()
	} else {
		e.player.Play()
	}

	e.broadcast(func(s *Subscription) {
		s.sendSlide(SlideChange{
			PreviousIndex: prev,
			Index:         index,
			Direction:     dir,
			Paused:        paused,
			Slide:         slide,
		})
	})
	return nil
}

// JumpTo loads an arbitrary slide and plays it forward.
func (e *Engine) JumpTo(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadLocked(index, false, Forward, false)
}

// Toggle switches the current transition between playing and paused.
func (e *Engine) Toggle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.player.Toggle()
}

// SeekTo moves the playhead within the current transition.
func (e *Engine) SeekTo(pos time.Duration) {
	e.mu.Lock()
	e.player.SeekTo(pos)
	e.mu.Unlock()
	e.broadcast(func(s *Subscription) { s.sendPosition(pos) })
}

// Index returns the current cursor index. During a backward
// playthrough that started from a finished slide this is the slide the
// reverse transition leads into.
func (e *Engine) Index() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index
}

// Direction returns the direction of the current playthrough.
func (e *Engine) Direction() Direction {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.direction
}

// Slide returns the slide under the cursor.
func (e *Engine) Slide() manifest.Slide {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.index < 0 {
		return e.slides[0]
	}
	return e.slides[e.index]
}

// Slides returns the flattened sequence the engine was built over.
func (e *Engine) Slides() []manifest.Slide {
	return e.slides
}

// State returns the player run state.
func (e *Engine) State() player.State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.player.State()
}

// Position returns the playhead position within the current asset.
func (e *Engine) Position() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.player.Position()
}

// Duration returns the duration of the current asset.
func (e *Engine) Duration() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.player.Duration()
}

// Finished reports whether the current transition reached its natural
// end.
func (e *Engine) Finished() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.player.Finished()
}

// atStartLocked reports a playhead within the boundary tolerance of
// position zero.
func (e *Engine) atStartLocked() bool {
	return e.player.Position() <= player.BoundaryEpsilon
}

// atEndLocked reports a playhead within the boundary tolerance of the
// asset end.
func (e *Engine) atEndLocked() bool {
	d := e.player.Duration()
	return d > 0 && e.player.Position() >= d-player.BoundaryEpsilon
}

// Subscribe creates a new event subscription.
func (e *Engine) Subscribe() *Subscription {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	sub := newSubscription()
	e.subs = append(e.subs, sub)
	return sub
}

func (e *Engine) broadcast(fn func(*Subscription)) {
	e.subsMu.RLock()
	defer e.subsMu.RUnlock()
	for _, sub := range e.subs {
		fn(sub)
	}
}

// Close stops the engine and closes all subscriptions.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	close(e.done)
	e.player.Stop()
	e.mu.Unlock()

	e.subsMu.Lock()
	for _, sub := range e.subs {
		sub.close()
	}
	e.subs = nil
	e.subsMu.Unlock()

	return nil
}
