package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "navigation", "presenter"
}

// Defaults contains the default key bindings. The config file can
// override the keys per action.
var Defaults = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit presentation", "global"},
	{ActionTogglePresent, []string{"tab"}, "Toggle presenter view", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Navigation
	{ActionNext, []string{"right", "space", "pgdown"}, "Next slide", "navigation"},
	{ActionPrevious, []string{"left", "pgup"}, "Previous slide", "navigation"},
	{ActionFirst, []string{"home"}, "First slide", "navigation"},
	{ActionLast, []string{"end"}, "Last slide", "navigation"},
	{ActionPlayPause, []string{"p"}, "Play/pause transition", "navigation"},

	// Presenter view
	{ActionMoveUp, []string{"k", "up"}, "Move up slide list", "presenter"},
	{ActionMoveDown, []string{"j", "down"}, "Move down slide list", "presenter"},
	{ActionSelect, []string{"enter"}, "Jump to selected slide", "presenter"},
}

// ByContext returns key bindings filtered by context.
func ByContext(bindings []Binding, context string) []Binding {
	var result []Binding
	for _, kb := range bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// WithOverrides returns a copy of bindings where actions present in
// overrides get the configured keys instead of the defaults. Unknown
// actions in overrides are ignored.
func WithOverrides(bindings []Binding, overrides map[string][]string) []Binding {
	if len(overrides) == 0 {
		return bindings
	}
	out := make([]Binding, len(bindings))
	copy(out, bindings)
	for i, b := range out {
		if keys, ok := overrides[string(b.Action)]; ok && len(keys) > 0 {
			out[i].Keys = keys
		}
	}
	return out
}
