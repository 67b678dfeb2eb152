// Package notespanel renders speaker notes and the slide thumbnail in
// the presenter view.
package notespanel

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tetofonta/manim-slides/internal/icons"
	"github.com/tetofonta/manim-slides/internal/manifest"
	"github.com/tetofonta/manim-slides/internal/ui"
	"github.com/tetofonta/manim-slides/internal/ui/kittyimg"
	"github.com/tetofonta/manim-slides/internal/ui/render"
	"github.com/tetofonta/manim-slides/internal/ui/styles"
)

// Model represents the notes panel state.
type Model struct {
	ui.Base
	viewport viewport.Model
	current  manifest.Slide
	next     *manifest.Slide
	hasSlide bool
	graphics bool // terminal supports inline thumbnails
}

// New creates a new notes panel model.
func New() Model {
	return Model{
		viewport: viewport.New(0, 0),
		graphics: kittyimg.Supported(),
	}
}

// SetSlide updates the displayed slide and its successor.
func (m *Model) SetSlide(current manifest.Slide, next *manifest.Slide) {
	m.current = current
	m.next = next
	m.hasSlide = true
	m.viewport.SetContent(render.Sanitize(current.Notes))
	m.viewport.GotoTop()
}

// SetSize sets the panel dimensions and resizes the notes viewport.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.viewport.Width = max(width-ui.BorderHeight, 0)
	m.viewport.Height = max(m.notesHeight(), 0)
}

// Update handles scrolling of the notes viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && !m.IsFocused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the notes panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	s := styles.T().S()

	header := s.Title.Render(render.TruncateAndPad(icons.FormatNotes("Notes"), innerWidth))
	separator := render.Separator(innerWidth)

	var parts []string
	parts = append(parts, header, separator)
	if thumb := m.renderThumbnail(innerWidth); thumb != "" {
		parts = append(parts, thumb)
	}
	parts = append(parts, m.viewport.View())
	parts = append(parts, separator, m.renderNextSlide(innerWidth))

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(strings.Join(parts, "\n"))
}

// renderThumbnail shows the current slide's still frame, either via
// the kitty graphics protocol or as a placeholder box.
func (m Model) renderThumbnail(innerWidth int) string {
	if !m.hasSlide || m.thumbnailRows() == 0 {
		return ""
	}
	cols := min(ui.ThumbnailCols, innerWidth)
	rows := m.thumbnailRows()

	if m.graphics && m.current.Thumbnail != "" {
		if seq := kittyimg.EncodeFile(m.current.Thumbnail, cols, rows); seq != "" {
			// The escape sequence paints over the reserved cells.
			pad := strings.Repeat("\n", rows-1)
			return seq + pad
		}
	}
	return kittyimg.Placeholder(cols, rows)
}

func (m Model) renderNextSlide(innerWidth int) string {
	s := styles.T().S()
	if m.next == nil {
		return s.Muted.Render(render.TruncateAndPad("Next: end of presentation", innerWidth))
	}
	label := "Next: " + nextSlideLabel(*m.next)
	return s.Muted.Render(render.TruncateAndPad(label, innerWidth))
}

// nextSlideLabel summarizes the upcoming slide for the preview line.
func nextSlideLabel(slide manifest.Slide) string {
	var markers []string
	if slide.Loop {
		markers = append(markers, icons.Loop())
	}
	if slide.AutoNext {
		markers = append(markers, icons.AutoNext())
	}
	label := firstNotesLine(slide.Notes)
	if label == "" {
		label = slide.File
	}
	if len(markers) > 0 {
		label += " " + strings.Join(markers, " ")
	}
	return label
}

func firstNotesLine(notes string) string {
	line, _, _ := strings.Cut(render.Sanitize(notes), "\n")
	return strings.TrimSpace(line)
}

// thumbnailRows returns the rows reserved for the thumbnail, shrinking
// to zero on short panels so notes keep priority.
func (m Model) thumbnailRows() int {
	if m.Height() < ui.PanelOverhead+ui.ThumbnailRows+4 {
		return 0
	}
	return ui.ThumbnailRows
}

func (m Model) notesHeight() int {
	h := m.Height() - ui.PanelOverhead - 2 // next-slide separator + line
	if rows := m.thumbnailRows(); rows > 0 {
		h -= rows
	}
	return h
}
