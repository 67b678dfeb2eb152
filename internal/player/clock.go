package player

import (
	"sync"
	"time"
)

// Clock is the production media primitive. Painting video frames is the
// display toolkit's concern, not ours, so playback is modeled as a
// wall-clock playhead over the asset's probed container duration: Load
// probes the MP4 header, Play starts the clock, and a timer delivers the
// end-of-media signal when the playhead crosses the final cycle.
//
// All methods are safe to call from the event loop while the completion
// timer fires on its own goroutine; a mutex serializes the two.
type Clock struct {
	mu sync.Mutex

	state    State
	path     string
	duration time.Duration
	rate     float64
	loops    int // remaining playthroughs, -1 = infinite
	finished bool

	offset    time.Duration // playhead at the last play/pause boundary
	startedAt time.Time     // wall time playback last entered Playing
	timer     *time.Timer
	gen       int // invalidates timers from superseded loads/seeks

	finishedCh chan struct{}

	// Injection points for tests.
	now   func() time.Time
	probe func(string) (time.Duration, error)
}

// NewClock creates an idle clock player at realtime rate.
func NewClock() *Clock {
	return &Clock{
		state:      Stopped,
		rate:       1.0,
		finishedCh: make(chan struct{}, 1),
		now:        time.Now,
		probe:      ProbeDuration,
	}
}

// Load probes the asset and stages it paused at position zero with a
// single playthrough configured.
func (c *Clock) Load(path string) error {
	d, err := c.probe(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
	c.path = path
	c.duration = d
	c.offset = 0
	c.loops = 1
	c.finished = false
	c.state = Paused
	return nil
}

// Play starts or resumes the playhead. Resuming after natural
// completion restarts from the beginning, matching media players that
// rewind on play-after-end.
func (c *Clock) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Stopped || c.state == Playing {
		return
	}
	if c.finished || c.offset >= c.duration {
		c.offset = 0
	}
	c.finished = false
	c.startedAt = c.now()
	c.state = Playing
	c.scheduleLocked()
}

// Pause freezes the playhead.
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Playing {
		return
	}
	c.offset = c.positionLocked()
	c.stopTimerLocked()
	c.state = Paused
}

// Toggle switches between Playing and Paused; no-op when Stopped.
func (c *Clock) Toggle() {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	switch state {
	case Playing:
		c.Pause()
	case Paused:
		c.Play()
	case Stopped:
	}
}

// Stop unloads the asset.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
	c.state = Stopped
	c.path = ""
	c.duration = 0
	c.offset = 0
	c.finished = false
}

// SetLoops sets the remaining playthrough count; -1 loops forever.
func (c *Clock) SetLoops(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loops = n
}

// SetRate changes the playback rate multiplier. The elapsed portion is
// folded into the playhead first so the rate change applies only to the
// remainder.
func (c *Clock) SetRate(rate float64) {
	if rate <= 0 {
		rate = 1.0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Playing {
		c.offset = c.positionLocked()
		c.startedAt = c.now()
		c.rate = rate
		c.scheduleLocked()
		return
	}
	c.rate = rate
}

// SeekTo moves the playhead, clamped to the asset bounds. Seeking
// clears end-of-media status even when the target is the very end.
func (c *Clock) SeekTo(pos time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Stopped {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > c.duration {
		pos = c.duration
	}
	c.finished = false
	c.offset = pos
	if c.state == Playing {
		c.startedAt = c.now()
		c.scheduleLocked()
	}
}

// State returns the current run state.
func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Position returns the current playhead position.
func (c *Clock) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.positionLocked()
}

// Duration returns the probed container duration of the loaded asset.
func (c *Clock) Duration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// Finished reports end-of-media status.
func (c *Clock) Finished() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.finished
}

// FinishedChan delivers one signal per natural completion.
func (c *Clock) FinishedChan() <-chan struct{} {
	return c.finishedCh
}

func (c *Clock) positionLocked() time.Duration {
	if c.state != Playing {
		return c.offset
	}
	elapsed := time.Duration(float64(c.now().Sub(c.startedAt)) * c.rate)
	pos := c.offset + elapsed
	if pos > c.duration {
		pos = c.duration
	}
	return pos
}

func (c *Clock) stopTimerLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Clock) scheduleLocked() {
	c.stopTimerLocked()
	remaining := c.duration - c.offset
	if remaining < 0 {
		remaining = 0
	}
	scaled := time.Duration(float64(remaining) / c.rate)
	gen := c.gen
	c.timer = time.AfterFunc(scaled, func() { c.cycleEnd(gen) })
}

// cycleEnd fires when the playhead reaches the end of one playthrough.
func (c *Clock) cycleEnd(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen || c.state != Playing {
		return // superseded by a later load/seek/pause
	}

	if c.loops == -1 {
		c.offset = 0
		c.startedAt = c.now()
		c.scheduleLocked()
		return
	}
	if c.loops > 1 {
		c.loops--
		c.offset = 0
		c.startedAt = c.now()
		c.scheduleLocked()
		return
	}

	c.stopTimerLocked()
	c.state = Paused
	c.offset = c.duration
	c.finished = true
	select {
	case c.finishedCh <- struct{}{}:
	default:
	}
}
