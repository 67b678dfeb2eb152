// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tetofonta/manim-slides/internal/icons"
	"github.com/tetofonta/manim-slides/internal/player"
	"github.com/tetofonta/manim-slides/internal/ui/playbar"
	"github.com/tetofonta/manim-slides/internal/ui/render"
	"github.com/tetofonta/manim-slides/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := m.renderHeader()

	var body string
	switch {
	case m.HelpVisible:
		body = m.renderHelp()
	case m.PresenterVisible:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.SlideList.View(), m.Notes.View())
	default:
		body = m.renderStage()
	}

	bar := playbar.Render(playbar.State{
		Position:  m.Engine.Position(),
		Duration:  m.Engine.Duration(),
		Player:    m.Engine.State(),
		Direction: m.Engine.Direction(),
		Looping:   m.Engine.Slide().Loop,
	}, m.Width)

	status := m.renderStatus()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, bar, status)
}

func (m Model) renderHeader() string {
	title := styles.TitleGradient(m.Title)
	info := styles.T().S().Muted.Render(m.Resolution.String())
	return render.Row(title, info, m.Width)
}

// renderStage is the default full-screen view: a large slide counter
// standing in for the rendered frame, which lives in the video window.
func (m Model) renderStage() string {
	s := styles.T().S()
	total := len(m.Engine.Slides())
	active := m.SlideList.Active()
	slide := m.Engine.Slide()

	lines := []string{
		s.Active.Render(fmt.Sprintf("Slide %d / %d", active+1, total)),
	}

	var markers []string
	if slide.Loop {
		markers = append(markers, icons.Loop())
	}
	if slide.AutoNext {
		markers = append(markers, icons.AutoNext())
	}
	if len(markers) > 0 {
		lines = append(lines, s.Marker.Render(strings.Join(markers, " ")))
	}

	if m.Engine.State() != player.Playing && m.Engine.Finished() {
		lines = append(lines, s.Muted.Render("transition finished"))
	}

	stageHeight := max(m.Height-3, 1)
	content := make([]string, 0, stageHeight)
	topPad := max((stageHeight-len(lines))/2, 0)
	for range topPad {
		content = append(content, "")
	}
	for _, l := range lines {
		content = append(content, render.Center(l, m.Width))
	}
	for len(content) < stageHeight {
		content = append(content, "")
	}
	return strings.Join(content, "\n")
}

func (m Model) renderHelp() string {
	s := styles.T().S()
	lines := []string{s.Title.Render("Key bindings"), ""}
	for _, b := range m.Bindings {
		keys := strings.Join(b.Keys, ", ")
		lines = append(lines, render.Row(s.Base.Render(keys), s.Muted.Render(b.Description), min(m.Width, 60)))
	}

	stageHeight := max(m.Height-3, 1)
	for len(lines) < stageHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines[:stageHeight], "\n")
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.StatusMsg == "" {
		return render.EmptyLine(m.Width)
	}
	return s.Notice.Render(render.TruncateAndPad(m.StatusMsg, m.Width))
}
