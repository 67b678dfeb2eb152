package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Scene    string
	Slide    string
	Loop     string
	AutoNext string
	Playing  string
	Paused   string
	Forward  string
	Backward string
	Notes    string
}

var (
	nerdIcons = Icons{
		Scene:    " ", // nf-fa-film
		Slide:    " ", // nf-fa-image
		Loop:     "\U000f0456", // nf-md-repeat
		AutoNext: "\U000f04ad", // nf-md-skip_next
		Playing:  "", // nf-fa-play
		Paused:   "", // nf-fa-pause
		Forward:  "", // nf-fa-forward
		Backward: "", // nf-fa-backward
		Notes:    " ", // nf-fa-sticky_note
	}

	unicodeIcons = Icons{
		Scene:    "🎬 ",
		Slide:    "🖼 ",
		Loop:     "🔁",
		AutoNext: "⏭",
		Playing:  "▶",
		Paused:   "⏸",
		Forward:  "⏩",
		Backward: "⏪",
		Notes:    "📝 ",
	}

	noneIcons = Icons{
		Scene:    "",
		Slide:    "",
		Loop:     "[L]",
		AutoNext: "[A]",
		Playing:  ">",
		Paused:   "||",
		Forward:  ">>",
		Backward: "<<",
		Notes:    "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatScene formats a scene name with the appropriate icon.
func FormatScene(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Scene + name
}

// FormatSlide formats a slide label with the appropriate icon.
func FormatSlide(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Slide + name
}

// FormatNotes formats a notes header with the appropriate icon.
func FormatNotes(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Notes + name
}

// Loop returns the looping-slide marker.
func Loop() string {
	return current.Loop
}

// AutoNext returns the auto-advance marker.
func AutoNext() string {
	return current.AutoNext
}

// Playing returns the playing indicator.
func Playing() string {
	return current.Playing
}

// Paused returns the paused indicator.
func Paused() string {
	return current.Paused
}

// Forward returns the forward-playthrough indicator.
func Forward() string {
	return current.Forward
}

// Backward returns the backward-playthrough indicator.
func Backward() string {
	return current.Backward
}
