// Package slidelist renders the presenter's slide overview panel.
package slidelist

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tetofonta/manim-slides/internal/manifest"
	"github.com/tetofonta/manim-slides/internal/playback"
	"github.com/tetofonta/manim-slides/internal/ui"
)

// JumpToSlideMsg is sent when the user selects a slide to jump to.
type JumpToSlideMsg struct {
	Index int
}

// Model represents the slide list panel state.
type Model struct {
	ui.Base
	slides   []manifest.Slide
	active   int         // slide the audience is logically seeing
	cursor   int
	offset   int
	progress map[int]int // displayed playthrough percent per slide
}

// New creates a new slide list model.
func New(slides []manifest.Slide) Model {
	return Model{
		slides:   slides,
		progress: make(map[int]int),
	}
}

// SetActive marks the logically presented slide and keeps it visible.
func (m *Model) SetActive(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(m.slides) {
		index = len(m.slides) - 1
	}
	m.active = index
	m.cursor = index
	m.ensureCursorVisible()
}

// Active returns the logically presented slide index.
func (m Model) Active() int {
	return m.active
}

// SetProgress records the playthrough percent shown on a slide row.
func (m *Model) SetProgress(index, percent int) {
	if index < 0 || index >= len(m.slides) {
		return
	}
	m.progress[index] = min(max(percent, 0), 100)
}

// DisplayIndex maps the engine cursor to the slide the audience is
// seeing. A slide staged paused at its first frame still shows the
// previous slide's final frame, so the display lags one behind.
func DisplayIndex(index int, atStart, playing bool) int {
	if atStart && !playing {
		index--
	}
	return max(index, 0)
}

// ProgressIndex maps a playhead update to the slide row it belongs to.
// A backward playthrough of slide i animates the transition into i, so
// the motion shows on the row after the (already decremented) cursor.
func ProgressIndex(index int, dir playback.Direction) int {
	if dir == playback.Backward {
		return index + 1
	}
	return index
}

// ProgressPercent converts a playhead percent to the displayed value;
// backward playthroughs drain the bar instead of filling it.
func ProgressPercent(percent int, dir playback.Direction) int {
	if dir == playback.Backward {
		return 100 - percent
	}
	return percent
}

// MoveCursor moves the selection cursor by delta rows, clamped to the
// list. The key bindings live with the application model so configured
// overrides apply; the panel only exposes the movements.
func (m *Model) MoveCursor(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), len(m.slides)-1)
	m.ensureCursorVisible()
}

// Select returns a command jumping the presentation to the slide under
// the cursor.
func (m *Model) Select() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.slides) {
		return nil
	}
	idx := m.cursor
	return func() tea.Msg {
		return JumpToSlideMsg{Index: idx}
	}
}

func (m *Model) ensureCursorVisible() {
	h := m.listHeight()
	if h <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m Model) listHeight() int {
	// Account for border + header + separator
	return m.ListHeight(ui.PanelOverhead)
}
