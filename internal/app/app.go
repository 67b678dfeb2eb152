// internal/app/app.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tetofonta/manim-slides/internal/config"
	"github.com/tetofonta/manim-slides/internal/icons"
	"github.com/tetofonta/manim-slides/internal/keymap"
	"github.com/tetofonta/manim-slides/internal/manifest"
	"github.com/tetofonta/manim-slides/internal/playback"
	"github.com/tetofonta/manim-slides/internal/state"
	"github.com/tetofonta/manim-slides/internal/ui/notespanel"
	"github.com/tetofonta/manim-slides/internal/ui/slidelist"
)

// Model is the root application model containing all state.
type Model struct {
	Engine    *playback.Engine
	Sub       *playback.Subscription
	StateMgr  *state.Manager // nil when resume is disabled
	Resolver  *keymap.Resolver
	Bindings  []keymap.Binding
	SlideList slidelist.Model
	Notes     notespanel.Model

	Title            string
	PresentationKey  string // absolute slide folder path, keys the resume store
	Resolution       manifest.Resolution
	PresenterVisible bool
	HelpVisible      bool
	StatusMsg        string
	Width            int
	Height           int
}

// New creates a new application model from configuration.
func New(cfg *config.Config, title, presentationKey string, resolution manifest.Resolution,
	engine *playback.Engine, stateMgr *state.Manager,
) Model {
	icons.Init(cfg.Icons)

	bindings := keymap.WithOverrides(keymap.Defaults, cfg.Keys)

	slides := slidelist.New(engine.Slides())
	slides.SetFocused(true)

	return Model{
		Engine:           engine,
		Sub:              engine.Subscribe(),
		StateMgr:         stateMgr,
		Resolver:         keymap.NewResolver(bindings),
		Bindings:         bindings,
		SlideList:        slides,
		Notes:            notespanel.New(),
		Title:            title,
		PresentationKey:  presentationKey,
		Resolution:       resolution,
		PresenterVisible: cfg.Presenter,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(), m.WatchEngineEvents())
}
