// Package keymap defines key bindings and action dispatch for the presenter.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit          Action = "quit"
	ActionHelp          Action = "help"
	ActionTogglePresent Action = "toggle_presenter"

	// Navigation actions
	ActionNext      Action = "next"
	ActionPrevious  Action = "previous"
	ActionFirst     Action = "first"
	ActionLast      Action = "last"
	ActionPlayPause Action = "play_pause"

	// Presenter view actions
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionSelect   Action = "select" // enter on the slide list jumps there
)
