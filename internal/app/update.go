// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tetofonta/manim-slides/internal/errmsg"
	"github.com/tetofonta/manim-slides/internal/keymap"
	"github.com/tetofonta/manim-slides/internal/manifest"
	"github.com/tetofonta/manim-slides/internal/player"
	"github.com/tetofonta/manim-slides/internal/state"
	"github.com/tetofonta/manim-slides/internal/ui/slidelist"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layoutPanels()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.refreshPlayhead()
		return m, TickCmd()

	case SlideChangedMsg:
		m.handleSlideChanged()
		return m, m.WatchEngineEvents()

	case PositionChangedMsg:
		m.refreshPlayhead()
		return m, m.WatchEngineEvents()

	case NoticeMsg:
		m.StatusMsg = msg.Message
		return m, m.WatchEngineEvents()

	case PlaybackErrorMsg:
		m.StatusMsg = errmsg.FormatWith(errmsg.OpSlideLoad, msg.Path, msg.Err)
		return m, m.WatchEngineEvents()

	case ExhaustedMsg:
		return m, tea.Quit

	case EngineClosedMsg:
		return m, tea.Quit

	case slidelist.JumpToSlideMsg:
		if err := m.Engine.JumpTo(msg.Index); err != nil {
			m.StatusMsg = errmsg.Format(errmsg.OpSlideJump, err)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Resolver.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionNext:
		m.StatusMsg = ""
		m.Engine.Next()
		return m, nil

	case keymap.ActionPrevious:
		m.StatusMsg = ""
		m.Engine.Previous()
		return m, nil

	case keymap.ActionPlayPause:
		m.Engine.Toggle()
		return m, nil

	case keymap.ActionFirst:
		return m.jumpTo(0)

	case keymap.ActionLast:
		return m.jumpTo(len(m.Engine.Slides()) - 1)

	case keymap.ActionTogglePresent:
		m.PresenterVisible = !m.PresenterVisible
		m.layoutPanels()
		return m, nil

	case keymap.ActionHelp:
		m.HelpVisible = !m.HelpVisible
		return m, nil

	case keymap.ActionMoveUp:
		if m.PresenterVisible {
			m.SlideList.MoveCursor(-1)
		}
		return m, nil

	case keymap.ActionMoveDown:
		if m.PresenterVisible {
			m.SlideList.MoveCursor(1)
		}
		return m, nil

	case keymap.ActionSelect:
		if m.PresenterVisible {
			return m, m.SlideList.Select()
		}
		return m, nil
	}

	// Unbound keys go to the notes panel.
	if m.PresenterVisible {
		var cmd tea.Cmd
		m.Notes, cmd = m.Notes.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) jumpTo(index int) (tea.Model, tea.Cmd) {
	if err := m.Engine.JumpTo(index); err != nil {
		m.StatusMsg = errmsg.Format(errmsg.OpSlideJump, err)
	}
	return m, nil
}

// refreshPlayhead pushes the current playhead into the slide list
// progress rows and recomputes the logically presented slide.
func (m *Model) refreshPlayhead() {
	pos := m.Engine.Position()
	dur := m.Engine.Duration()
	dir := m.Engine.Direction()

	pct := 0
	if dur > 0 {
		pct = int(pos * 100 / dur)
	}
	m.SlideList.SetProgress(
		slidelist.ProgressIndex(m.Engine.Index(), dir),
		slidelist.ProgressPercent(pct, dir),
	)

	m.syncActiveSlide()
}

// handleSlideChanged reacts to the engine staging or advancing a
// slide: presenter panels follow and the resume position is saved.
func (m *Model) handleSlideChanged() {
	m.syncActiveSlide()

	if m.StateMgr != nil {
		m.StateMgr.SaveResume(state.Resume{
			Presentation: m.PresentationKey,
			SlideIndex:   m.SlideList.Active(),
		})
	}
}

// syncActiveSlide recomputes which slide the audience is seeing and
// points the presenter panels at it.
func (m *Model) syncActiveSlide() {
	atStart := m.Engine.Position() <= player.BoundaryEpsilon
	playing := m.Engine.State() == player.Playing
	active := slidelist.DisplayIndex(m.Engine.Index(), atStart, playing)

	m.SlideList.SetActive(active)

	slides := m.Engine.Slides()
	if active >= len(slides) {
		return
	}
	var next *manifest.Slide
	if active+1 < len(slides) {
		next = &slides[active+1]
	}
	m.Notes.SetSlide(slides[active], next)
}

// layoutPanels sizes the presenter panels for the current terminal.
func (m *Model) layoutPanels() {
	// Header line + status line + playbar.
	panelHeight := max(m.Height-3, 0)
	listWidth := m.Width * 2 / 5
	m.SlideList.SetSize(listWidth, panelHeight)
	m.Notes.SetSize(m.Width-listWidth, panelHeight)
}
