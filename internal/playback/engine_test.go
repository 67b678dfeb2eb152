package playback

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tetofonta/manim-slides/internal/manifest"
	"github.com/tetofonta/manim-slides/internal/player"
)

func makeSlides(n int) []manifest.Slide {
	out := make([]manifest.Slide, n)
	for i := range out {
		out[i] = manifest.Slide{
			File:    fmt.Sprintf("slide%d.mp4", i),
			RevFile: fmt.Sprintf("slide%d_rev.mp4", i),
		}
	}
	return out
}

// newTestEngine starts an engine over a mock player with a 2s asset
// duration and one subscription already drained of the initial load.
func newTestEngine(t *testing.T, slides []manifest.Slide, opts Options) (*Engine, *player.Mock, *Subscription) {
	t.Helper()
	m := player.NewMock()
	m.SetDuration(2 * time.Second)

	e, err := New(m, slides, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sub := e.Subscribe()
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { e.Close() })

	recvSlide(t, sub) // initial load
	return e, m, sub
}

func recvSlide(t *testing.T, sub *Subscription) SlideChange {
	t.Helper()
	select {
	case e := <-sub.SlideChanged:
		return e
	case <-time.After(time.Second):
		t.Fatal("no SlideChange event")
		return SlideChange{}
	}
}

func wantNoSlide(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case e := <-sub.SlideChanged:
		t.Fatalf("unexpected SlideChange: %+v", e)
	default:
	}
}

func recvNotice(t *testing.T, sub *Subscription) Notice {
	t.Helper()
	select {
	case n := <-sub.Notices:
		return n
	case <-time.After(time.Second):
		t.Fatal("no Notice event")
		return Notice{}
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	m := player.NewMock()
	if _, err := New(m, nil, Options{}); err == nil {
		t.Error("empty sequence accepted")
	}
	if _, err := New(m, makeSlides(3), Options{StartIndex: 3}); err == nil {
		t.Error("out-of-range start index accepted")
	}
	if _, err := New(m, makeSlides(3), Options{StartIndex: -1}); err == nil {
		t.Error("negative start index accepted")
	}
}

func TestStartLoadsStartSlide(t *testing.T) {
	m := player.NewMock()
	m.SetDuration(2 * time.Second)
	e, err := New(m, makeSlides(3), Options{StartIndex: 1, StartPaused: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sub := e.Subscribe()
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer e.Close()

	ev := recvSlide(t, sub)
	if ev.Index != 1 || !ev.Paused || ev.Direction != Forward {
		t.Errorf("initial SlideChange = %+v, want index 1 paused forward", ev)
	}
	if got := m.Path(); got != "slide1.mp4" {
		t.Errorf("loaded %q, want slide1.mp4", got)
	}
	if got := m.State(); got != player.Paused {
		t.Errorf("state = %v, want Paused", got)
	}
}

func TestStartPlaysWhenNotPaused(t *testing.T) {
	e, m, _ := newTestEngine(t, makeSlides(2), Options{})
	if got := m.State(); got != player.Playing {
		t.Errorf("state = %v, want Playing", got)
	}
	if got := e.Index(); got != 0 {
		t.Errorf("index = %d, want 0", got)
	}
}

func TestLoadConfiguresLooping(t *testing.T) {
	slides := makeSlides(2)
	slides[0].Loop = true
	_, m, _ := newTestEngine(t, slides, Options{})
	if got := m.Loops(); got != -1 {
		t.Errorf("loops on looping slide = %d, want -1", got)
	}
}

func TestLoadAppliesRate(t *testing.T) {
	_, m, _ := newTestEngine(t, makeSlides(2), Options{Rate: 1.5})
	if got := m.Rate(); got != 1.5 {
		t.Errorf("rate = %v, want 1.5", got)
	}
}

func TestHandleFinishedStagesNextPaused(t *testing.T) {
	e, m, sub := newTestEngine(t, makeSlides(3), Options{})

	m.Finish()
	e.HandleFinished()

	ev := recvSlide(t, sub)
	if ev.Index != 1 || !ev.Paused || ev.Direction != Forward {
		t.Errorf("SlideChange = %+v, want index 1 paused forward", ev)
	}
	if got := m.Path(); got != "slide1.mp4" {
		t.Errorf("loaded %q, want slide1.mp4", got)
	}
	if got := m.State(); got != player.Paused {
		t.Errorf("state = %v, want Paused", got)
	}
	if got := e.Index(); got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
}

func TestHandleFinishedAutoNextPlays(t *testing.T) {
	slides := makeSlides(3)
	slides[0].AutoNext = true
	e, m, sub := newTestEngine(t, slides, Options{})

	m.Finish()
	e.HandleFinished()

	ev := recvSlide(t, sub)
	if ev.Index != 1 || ev.Paused {
		t.Errorf("SlideChange = %+v, want index 1 playing", ev)
	}
	if got := m.State(); got != player.Playing {
		t.Errorf("state = %v, want Playing", got)
	}
}

func TestHandleFinishedLastSlideHolds(t *testing.T) {
	e, m, sub := newTestEngine(t, makeSlides(2), Options{})

	// Finish slide 0, stage slide 1, then finish slide 1.
	m.Finish()
	e.HandleFinished()
	recvSlide(t, sub)
	e.Toggle()
	m.Finish()
	e.HandleFinished()

	if n := recvNotice(t, sub); n.Message != "no more slides" {
		t.Errorf("notice = %q", n.Message)
	}
	wantNoSlide(t, sub)
	if got := e.Index(); got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
}

func TestHandleFinishedExitAfterLast(t *testing.T) {
	e, m, sub := newTestEngine(t, makeSlides(1), Options{ExitAfterLast: true})

	m.Finish()
	e.HandleFinished()

	select {
	case <-sub.Exhausted:
	case <-time.After(time.Second):
		t.Fatal("no Exhausted event")
	}
	wantNoSlide(t, sub)
}

func TestHandleFinishedBackwardLoopRestages(t *testing.T) {
	slides := makeSlides(2)
	slides[1].Loop = true
	e, m, sub := newTestEngine(t, slides, Options{StartIndex: 1})

	// Reverse out of the loop, then let the reverse playthrough end.
	e.Previous()
	ev := recvSlide(t, sub)
	if ev.Direction != Backward {
		t.Fatalf("SlideChange = %+v, want backward", ev)
	}
	m.Finish()
	e.HandleFinished()

	ev = recvSlide(t, sub)
	if ev.Index != 1 || !ev.Paused || ev.Direction != Forward {
		t.Errorf("SlideChange = %+v, want index 1 paused forward", ev)
	}
	// Restaged forward, the loop flag applies again.
	if got := m.Loops(); got != -1 {
		t.Errorf("loops after restage = %d, want -1", got)
	}
}

func TestLoadErrorEmitsErrorEvent(t *testing.T) {
	e, m, sub := newTestEngine(t, makeSlides(2), Options{})

	loadErr := errors.New("missing asset")
	m.LoadErr = loadErr
	m.Finish()
	e.HandleFinished()

	select {
	case ev := <-sub.Error:
		if !errors.Is(ev.Err, loadErr) {
			t.Errorf("ErrorEvent.Err = %v, want %v", ev.Err, loadErr)
		}
		if ev.Path != "slide1.mp4" {
			t.Errorf("ErrorEvent.Path = %q, want slide1.mp4", ev.Path)
		}
	case <-time.After(time.Second):
		t.Fatal("no ErrorEvent")
	}
	wantNoSlide(t, sub)
}

func TestFailedLoadKeepsCursor(t *testing.T) {
	e, m, sub := newTestEngine(t, makeSlides(3), Options{})

	m.LoadErr = errors.New("missing asset")
	m.Finish()
	e.HandleFinished()

	select {
	case <-sub.Error:
	case <-time.After(time.Second):
		t.Fatal("no ErrorEvent")
	}
	// The cursor still matches the asset the player actually holds.
	if got := e.Index(); got != 0 {
		t.Errorf("index after failed load = %d, want 0", got)
	}
	if got := m.Path(); got != "slide0.mp4" {
		t.Errorf("player holds %q, want slide0.mp4", got)
	}

	// Once the asset is back, stepping continues in order instead of
	// skipping past the slide that failed.
	m.LoadErr = nil
	e.Next()
	ev := recvSlide(t, sub)
	if ev.Index != 1 {
		t.Errorf("SlideChange = %+v, want index 1", ev)
	}
	if got := m.Path(); got != "slide1.mp4" {
		t.Errorf("loaded %q, want slide1.mp4", got)
	}
}

func TestFailedReverseLoadKeepsCursor(t *testing.T) {
	e, m, sub := newTestEngine(t, makeSlides(3), Options{StartIndex: 2})

	m.Finish()
	m.LoadErr = errors.New("missing asset")
	e.Previous()

	select {
	case <-sub.Error:
	case <-time.After(time.Second):
		t.Fatal("no ErrorEvent")
	}
	if got := e.Index(); got != 2 {
		t.Errorf("index after failed reverse load = %d, want 2", got)
	}
	if got := e.Direction(); got != Forward {
		t.Errorf("direction = %v, want Forward", got)
	}
	wantNoSlide(t, sub)
}

func TestEngineWatchesPlayerCompletion(t *testing.T) {
	_, m, sub := newTestEngine(t, makeSlides(2), Options{})

	m.SimulateFinished()

	ev := recvSlide(t, sub)
	if ev.Index != 1 || !ev.Paused {
		t.Errorf("SlideChange = %+v, want index 1 paused", ev)
	}
}

func TestJumpTo(t *testing.T) {
	e, m, sub := newTestEngine(t, makeSlides(4), Options{})

	if err := e.JumpTo(3); err != nil {
		t.Fatalf("JumpTo: %v", err)
	}
	ev := recvSlide(t, sub)
	if ev.Index != 3 || ev.Paused {
		t.Errorf("SlideChange = %+v, want index 3 playing", ev)
	}
	if got := m.Path(); got != "slide3.mp4" {
		t.Errorf("loaded %q, want slide3.mp4", got)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	e, _, sub := newTestEngine(t, makeSlides(1), Options{})
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	select {
	case <-sub.Done:
	default:
		t.Error("subscription not closed")
	}
}
