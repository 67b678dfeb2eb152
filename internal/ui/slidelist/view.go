package slidelist

import (
	"fmt"
	"strings"

	"github.com/tetofonta/manim-slides/internal/icons"
	"github.com/tetofonta/manim-slides/internal/manifest"
	"github.com/tetofonta/manim-slides/internal/ui"
	"github.com/tetofonta/manim-slides/internal/ui/render"
	"github.com/tetofonta/manim-slides/internal/ui/styles"
)

// View renders the slide list panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight // border padding
	listHeight := m.listHeight()

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	slideRows := m.renderSlideRows(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + slideRows

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderHeader(innerWidth int) string {
	text := fmt.Sprintf("Slides (%d/%d)", m.active+1, len(m.slides))
	return styles.T().S().Title.Render(render.TruncateAndPad(text, innerWidth))
}

func (m Model) renderSlideRows(innerWidth, listHeight int) string {
	lines := make([]string, 0, listHeight)
	for i := range listHeight {
		idx := i + m.offset
		if idx >= len(m.slides) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderSlideRow(m.slides[idx], idx, innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderSlideRow renders one slide line: prefix, number, markers and
// the playthrough percent.
func (m Model) renderSlideRow(slide manifest.Slide, idx, width int) string {
	s := styles.T().S()

	prefix := "  "
	if idx == m.active {
		prefix = icons.Playing() + " "
	}

	left := fmt.Sprintf("%s%3d", prefix, idx+1)
	if markers := slideMarkers(slide); markers != "" {
		left += " " + s.Marker.Render(markers)
	}

	right := ""
	if pct, ok := m.progress[idx]; ok {
		right = fmt.Sprintf("%3d%% ", pct)
	}

	line := render.Row(left, right, width)
	switch {
	case idx == m.active:
		return s.Active.Render(line)
	case idx == m.cursor && m.IsFocused():
		return s.Cursor.Render(line)
	default:
		return s.Base.Render(line)
	}
}

func slideMarkers(slide manifest.Slide) string {
	var parts []string
	if slide.Loop {
		parts = append(parts, icons.Loop())
	}
	if slide.AutoNext {
		parts = append(parts, icons.AutoNext())
	}
	return strings.Join(parts, " ")
}
