package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// TitleGradient renders the presentation title in bold with a
// horizontal sweep from the theme's primary to its secondary color.
// Blending runs in HCL space, one step per grapheme cluster.
func TitleGradient(text string) string {
	if text == "" {
		return ""
	}

	t := T()
	clusters := graphemes(text)
	bold := lipgloss.NewStyle().Bold(true)
	if len(clusters) == 1 {
		return bold.Foreground(t.Primary).Render(text)
	}

	from := parseHex(t.Primary)
	to := parseHex(t.Secondary)

	var b strings.Builder
	for i, cluster := range clusters {
		step := from.BlendHcl(to, float64(i)/float64(len(clusters)-1))
		b.WriteString(bold.Foreground(lipgloss.Color(step.Clamped().Hex())).Render(cluster))
	}
	return b.String()
}

func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// parseHex reads a "#rrggbb" theme color, falling back to neutral gray
// for anything else.
func parseHex(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}
