// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickInterval paces playhead refreshes; four frames a second is
// plenty for a percentage readout.
const tickInterval = 250 * time.Millisecond

// TickCmd returns a command that sends TickMsg after the tick interval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WatchEngineEvents returns a command that waits for playback engine
// events. It listens on all subscription channels and converts events
// to tea.Msg; Update re-issues it after every received message.
func (m Model) WatchEngineEvents() tea.Cmd {
	if m.Sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-m.Sub.SlideChanged:
			return SlideChangedMsg(e)
		case e := <-m.Sub.Notices:
			return NoticeMsg(e)
		case e := <-m.Sub.PositionChanged:
			return PositionChangedMsg(e)
		case e := <-m.Sub.Error:
			return PlaybackErrorMsg(e)
		case <-m.Sub.Exhausted:
			return ExhaustedMsg{}
		case <-m.Sub.Done:
			return EngineClosedMsg{}
		}
	}
}
