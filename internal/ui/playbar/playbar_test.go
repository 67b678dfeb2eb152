package playbar

import (
	"strings"
	"testing"
	"time"

	"github.com/tetofonta/manim-slides/internal/icons"
	"github.com/tetofonta/manim-slides/internal/playback"
	"github.com/tetofonta/manim-slides/internal/player"
)

func TestRenderBar(t *testing.T) {
	icons.Init("none")
	s := State{
		Position:  3 * time.Second,
		Duration:  12 * time.Second,
		Player:    player.Playing,
		Direction: playback.Forward,
	}

	out := Render(s, 60)
	if !strings.Contains(out, "0:03") || !strings.Contains(out, "0:12") {
		t.Errorf("times missing: %q", out)
	}
	if !strings.Contains(out, filledBlock) || !strings.Contains(out, emptyBlock) {
		t.Errorf("bar blocks missing: %q", out)
	}
	if !strings.HasPrefix(out, ">") {
		t.Errorf("playing indicator missing: %q", out)
	}
}

func TestRenderNarrowFallsBackToTimes(t *testing.T) {
	icons.Init("none")
	s := State{Position: time.Second, Duration: 4 * time.Second, Player: player.Paused}

	out := Render(s, 15)
	if strings.Contains(out, filledBlock) {
		t.Errorf("narrow bar should drop blocks: %q", out)
	}
	if !strings.Contains(out, "0:01 / 0:04") {
		t.Errorf("fallback times missing: %q", out)
	}
}

func TestStatusIndicator(t *testing.T) {
	icons.Init("none")
	s := State{Player: player.Paused, Direction: playback.Backward, Looping: true}
	got := statusIndicator(s)
	for _, want := range []string{"||", "<<", "[L]"} {
		if !strings.Contains(got, want) {
			t.Errorf("statusIndicator = %q, missing %q", got, want)
		}
	}
}
