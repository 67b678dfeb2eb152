package notespanel

import (
	"strings"
	"testing"

	"github.com/tetofonta/manim-slides/internal/icons"
	"github.com/tetofonta/manim-slides/internal/manifest"
)

func TestViewShowsNotesAndNextSlide(t *testing.T) {
	t.Setenv("MANIM_SLIDES_GRAPHICS", "none")
	icons.Init("none")

	m := New()
	m.SetSize(40, 20)
	next := manifest.Slide{File: "s2.mp4", Loop: true}
	m.SetSlide(manifest.Slide{File: "s1.mp4", Notes: "remember the joke"}, &next)

	view := m.View()
	if !strings.Contains(view, "remember the joke") {
		t.Errorf("notes missing from view:\n%s", view)
	}
	if !strings.Contains(view, "Next: s2.mp4 [L]") {
		t.Errorf("next slide preview missing:\n%s", view)
	}
}

func TestViewAtLastSlide(t *testing.T) {
	t.Setenv("MANIM_SLIDES_GRAPHICS", "none")
	m := New()
	m.SetSize(40, 20)
	m.SetSlide(manifest.Slide{File: "s9.mp4"}, nil)

	if !strings.Contains(m.View(), "end of presentation") {
		t.Error("final slide should announce end of presentation")
	}
}

func TestNextSlideLabelPrefersNotes(t *testing.T) {
	icons.Init("none")
	slide := manifest.Slide{File: "s3.mp4", Notes: "conclusion\nmore detail"}
	if got := nextSlideLabel(slide); got != "conclusion" {
		t.Errorf("nextSlideLabel = %q, want first notes line", got)
	}

	slide = manifest.Slide{File: "s3.mp4", AutoNext: true}
	if got := nextSlideLabel(slide); got != "s3.mp4 [A]" {
		t.Errorf("nextSlideLabel = %q, want file with marker", got)
	}
}

func TestShortPanelDropsThumbnail(t *testing.T) {
	t.Setenv("MANIM_SLIDES_GRAPHICS", "none")
	m := New()
	m.SetSize(40, 8)
	m.SetSlide(manifest.Slide{File: "s1.mp4"}, nil)

	if rows := m.thumbnailRows(); rows != 0 {
		t.Errorf("thumbnailRows = %d on short panel, want 0", rows)
	}
}
