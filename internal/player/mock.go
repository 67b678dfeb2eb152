package player

import (
	"sync"
	"time"
)

// Mock is a scriptable player for tests. It records every command the
// engine issues and lets the test drive position, duration and
// end-of-media transitions by hand.
type Mock struct {
	mu sync.Mutex

	state    State
	path     string
	position time.Duration
	duration time.Duration
	rate     float64
	loops    int
	finished bool

	finishedCh chan struct{}

	// Recorded command history.
	LoadCalls []string
	SeekCalls []time.Duration
	LoadErr   error
}

// NewMock creates a mock player with no asset loaded.
func NewMock() *Mock {
	return &Mock{
		state:      Stopped,
		rate:       1.0,
		finishedCh: make(chan struct{}, 1),
	}
}

func (m *Mock) Load(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls = append(m.LoadCalls, path)
	if m.LoadErr != nil {
		return m.LoadErr
	}
	m.path = path
	m.position = 0
	m.loops = 1
	m.finished = false
	m.state = Paused
	return nil
}

func (m *Mock) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Stopped {
		return
	}
	if m.finished {
		m.position = 0
	}
	m.finished = false
	m.state = Playing
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Toggle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case Playing:
		m.state = Paused
	case Paused:
		if m.finished {
			m.position = 0
		}
		m.finished = false
		m.state = Playing
	case Stopped:
	}
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Stopped
	m.path = ""
	m.position = 0
	m.duration = 0
	m.finished = false
}

func (m *Mock) SetLoops(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loops = n
}

func (m *Mock) SetRate(rate float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rate = rate
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SeekCalls = append(m.SeekCalls, pos)
	if pos > m.duration {
		pos = m.duration
	}
	m.finished = false
	m.position = pos
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Finished() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.finished
}

func (m *Mock) FinishedChan() <-chan struct{} {
	return m.finishedCh
}

// Path returns the most recently loaded asset path.
func (m *Mock) Path() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.path
}

// Loops returns the configured playthrough count.
func (m *Mock) Loops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loops
}

// Rate returns the configured playback rate.
func (m *Mock) Rate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rate
}

// SetPosition moves the playhead without recording a seek.
func (m *Mock) SetPosition(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = pos
}

// SetDuration sets the duration reported for the loaded asset.
func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

// Finish drives the player to its natural end state without signaling:
// paused at the final position with end-of-media status set.
func (m *Mock) Finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Paused
	m.position = m.duration
	m.finished = true
}

// SimulateFinished drives the player to its natural end and queues one
// signal on the finished channel.
func (m *Mock) SimulateFinished() {
	m.Finish()
	select {
	case m.finishedCh <- struct{}{}:
	default:
	}
}
