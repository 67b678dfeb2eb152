package playback

import "time"

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	SlideChanged    <-chan SlideChange
	PositionChanged <-chan PositionChange
	Notices         <-chan Notice
	Error           <-chan ErrorEvent
	Exhausted       <-chan Exhausted
	Done            <-chan struct{}

	// Internal write channels
	slideCh     chan SlideChange
	positionCh  chan PositionChange
	noticeCh    chan Notice
	errorCh     chan ErrorEvent
	exhaustedCh chan Exhausted
	doneCh      chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		slideCh:     make(chan SlideChange, eventBufferSize),
		positionCh:  make(chan PositionChange, eventBufferSize),
		noticeCh:    make(chan Notice, eventBufferSize),
		errorCh:     make(chan ErrorEvent, eventBufferSize),
		exhaustedCh: make(chan Exhausted, 1),
		doneCh:      make(chan struct{}),
	}
	s.SlideChanged = s.slideCh
	s.PositionChanged = s.positionCh
	s.Notices = s.noticeCh
	s.Error = s.errorCh
	s.Exhausted = s.exhaustedCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendSlide sends a slide change event (non-blocking).
func (s *Subscription) sendSlide(e SlideChange) {
	select {
	case s.slideCh <- e:
	default:
		// Drop if buffer full
	}
}

// sendPosition sends a position change event (non-blocking).
func (s *Subscription) sendPosition(pos time.Duration) {
	select {
	case s.positionCh <- PositionChange{Position: pos}:
	default:
	}
}

// sendNotice sends an informational message (non-blocking).
func (s *Subscription) sendNotice(msg string) {
	select {
	case s.noticeCh <- Notice{Message: msg}:
	default:
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}

// sendExhausted sends the end-of-presentation signal (non-blocking).
func (s *Subscription) sendExhausted() {
	select {
	case s.exhaustedCh <- Exhausted{}:
	default:
	}
}
