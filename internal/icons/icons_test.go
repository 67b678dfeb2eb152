package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestFormatScene(t *testing.T) {
	Init("none")
	if got := FormatScene("Intro"); got != "Intro" {
		t.Errorf("none style: FormatScene = %q, want bare name", got)
	}

	Init("unicode")
	if got := FormatScene("Intro"); got == "Intro" {
		t.Error("unicode style: FormatScene did not prepend icon")
	}

	Init("none")
}

func TestMarkers(t *testing.T) {
	Init("none")
	if Loop() != "[L]" {
		t.Errorf("Loop = %q, want [L]", Loop())
	}
	if AutoNext() != "[A]" {
		t.Errorf("AutoNext = %q, want [A]", AutoNext())
	}

	Init("unicode")
	if Loop() == "[L]" {
		t.Error("unicode style still returns fallback loop marker")
	}
	Init("none")
}
