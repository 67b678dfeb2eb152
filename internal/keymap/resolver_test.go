package keymap

import (
	"slices"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	r := NewResolver(Defaults)

	tests := []struct {
		key  string
		want Action
	}{
		{"right", ActionNext},
		{"space", ActionNext},
		{"left", ActionPrevious},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"tab", ActionTogglePresent},
		{"p", ActionPlayPause},
		{"unbound", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeysFor(t *testing.T) {
	r := NewResolver(Defaults)
	keys := r.KeysFor(ActionNext)
	if !slices.Contains(keys, "right") || !slices.Contains(keys, "space") {
		t.Errorf("KeysFor(next) = %v, want right and space", keys)
	}
}

func TestWithOverrides(t *testing.T) {
	bindings := WithOverrides(Defaults, map[string][]string{
		"next":     {"n"},
		"unknown":  {"z"},
		"previous": nil, // empty override keeps defaults
	})
	r := NewResolver(bindings)

	if got := r.Resolve("n"); got != ActionNext {
		t.Errorf("Resolve(n) = %q, want next", got)
	}
	if got := r.Resolve("right"); got == ActionNext {
		t.Error("override did not replace default next keys")
	}
	if got := r.Resolve("left"); got != ActionPrevious {
		t.Errorf("Resolve(left) = %q, want previous", got)
	}

	// Defaults themselves must not be mutated.
	dr := NewResolver(Defaults)
	if got := dr.Resolve("right"); got != ActionNext {
		t.Error("WithOverrides mutated Defaults")
	}
}

func TestByContextNavigation(t *testing.T) {
	nav := ByContext(Defaults, "navigation")
	if len(nav) == 0 {
		t.Fatal("no navigation bindings")
	}
	for _, b := range nav {
		if b.Context != "navigation" {
			t.Errorf("binding %v has context %q", b.Action, b.Context)
		}
	}
}
