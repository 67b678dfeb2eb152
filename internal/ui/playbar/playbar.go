// Package playbar renders the transition progress bar at the bottom of
// the screen.
package playbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/tetofonta/manim-slides/internal/icons"
	"github.com/tetofonta/manim-slides/internal/playback"
	"github.com/tetofonta/manim-slides/internal/player"
	"github.com/tetofonta/manim-slides/internal/ui"
	"github.com/tetofonta/manim-slides/internal/ui/render"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// State is everything the bar needs for one frame.
type State struct {
	Position  time.Duration
	Duration  time.Duration
	Player    player.State
	Direction playback.Direction
	Looping   bool
}

// Render draws a block-style progress bar.
// Format: ▶ >>  0:03  ▓▓▓▓▓░░░░░  0:12
func Render(s State, width int) string {
	status := statusIndicator(s)

	posStr := render.FormatDuration(s.Position)
	durStr := render.FormatDuration(s.Duration)

	fixedWidth := ansi.StringWidth(status) + 2 + ansi.StringWidth(posStr) + 2 + 2 + ansi.StringWidth(durStr)
	barWidth := width - fixedWidth

	if barWidth < ui.MinProgressBarWidth {
		// Too narrow for bar, just show times
		return status + "  " + posStr + " / " + durStr
	}

	var ratio float64
	if s.Duration > 0 {
		ratio = float64(s.Position) / float64(s.Duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)

	return status + "  " + posStr + "  " + bar + "  " + durStr
}

// statusIndicator combines the run state with the playthrough
// direction and loop marker.
func statusIndicator(s State) string {
	parts := make([]string, 0, 3)
	if s.Player == player.Playing {
		parts = append(parts, icons.Playing())
	} else {
		parts = append(parts, icons.Paused())
	}
	if s.Direction == playback.Backward {
		parts = append(parts, icons.Backward())
	} else {
		parts = append(parts, icons.Forward())
	}
	if s.Looping {
		parts = append(parts, icons.Loop())
	}
	return strings.Join(parts, " ")
}
