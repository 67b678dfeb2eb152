package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/tetofonta/manim-slides/internal/app"
	"github.com/tetofonta/manim-slides/internal/config"
	"github.com/tetofonta/manim-slides/internal/manifest"
	"github.com/tetofonta/manim-slides/internal/playback"
	"github.com/tetofonta/manim-slides/internal/player"
	"github.com/tetofonta/manim-slides/internal/state"
)

const usage = `Usage:
  manim-slides [present] [flags] SCENE...
  manim-slides list-scenes [flags]

Present plays the named scenes in order; without scene arguments it
reads the sequence from <folder>/presentation.json.

Flags:
  -folder DIR             slide manifest folder (default from config, then ./slides)
  -presentation-file PATH presentation manifest pinning root and scene order
  -start-at S[,N]         start at scene S, slide N (negative S counts from the end)
  -start-at-scene-number S
  -start-at-slide-number N
  -start-paused           stage the first slide instead of playing it
  -exit-after-last-slide  quit when the final slide finishes
  -playback-rate X        playback rate multiplier
  -presenter              open with the presenter view visible
  -no-resume              ignore and do not record the saved slide position
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "manim-slides: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		switch args[0] {
		case "list-scenes":
			return runListScenes(cfg, args[1:])
		case "present":
			args = args[1:]
		case "-h", "-help", "--help", "help":
			fmt.Print(usage)
			return nil
		}
	}
	return runPresent(cfg, args)
}

func runListScenes(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("list-scenes", flag.ContinueOnError)
	folder := fs.String("folder", cfg.Folder, "slide manifest folder")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dir := resolveFolder(*folder)
	infos, skipped := manifest.ListScenes(dir)
	for _, err := range skipped {
		fmt.Fprintf(os.Stderr, "skipping: %v\n", err)
	}
	if len(infos) == 0 {
		fmt.Printf("no scenes in %s\n", dir)
		return nil
	}

	for _, info := range infos {
		noun := "slides"
		if info.SlideCount == 1 {
			noun = "slide"
		}
		fmt.Printf("%-30s %3d %-7s %s\n",
			info.Name, info.SlideCount, noun, humanize.IBytes(uint64(info.AssetBytes)))
	}
	return nil
}

func runPresent(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("present", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	folder := fs.String("folder", cfg.Folder, "slide manifest folder")
	presFile := fs.String("presentation-file", "", "presentation manifest path")
	startAt := fs.String("start-at", "", "start position as scene[,slide]")
	startScene := fs.Int("start-at-scene-number", 0, "scene to start at")
	startSlide := fs.Int("start-at-slide-number", 0, "slide within the start scene")
	startPaused := fs.Bool("start-paused", cfg.StartPaused, "stage the first slide instead of playing it")
	exitAfterLast := fs.Bool("exit-after-last-slide", cfg.ExitAfterLastSlide, "quit when the final slide finishes")
	rate := fs.Float64("playback-rate", cfg.PlaybackRate, "playback rate multiplier")
	presenter := fs.Bool("presenter", cfg.Presenter, "open with the presenter view visible")
	noResume := fs.Bool("no-resume", false, "ignore and do not record the saved slide position")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.StartPaused = *startPaused
	cfg.ExitAfterLastSlide = *exitAfterLast
	cfg.Presenter = *presenter

	dir := resolveFolder(*folder)
	names := fs.Args()

	// An explicit presentation manifest (or one sitting in the folder)
	// pins the root and the scene order; scene arguments override the
	// order but keep the root.
	if *presFile == "" && len(names) == 0 {
		if candidate := filepath.Join(dir, "presentation.json"); fileExists(candidate) {
			*presFile = candidate
		}
	}
	if *presFile != "" {
		pres, err := manifest.LoadPresentation(*presFile)
		if err != nil {
			return err
		}
		dir = resolveAgainst(filepath.Dir(*presFile), pres.Root)
		if len(names) == 0 {
			names = pres.Sequence
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("no scenes to present, name scenes or add %s", filepath.Join(dir, "presentation.json"))
	}

	scenes, err := manifest.LoadScenes(dir, names)
	if err != nil {
		return err
	}
	slides, resolution := manifest.Flatten(scenes)

	key, err := filepath.Abs(dir)
	if err != nil {
		key = dir
	}

	var stateMgr *state.Manager
	if cfg.Resume && !*noResume {
		stateMgr, err = state.Open()
		if err != nil {
			fmt.Fprintf(os.Stderr, "manim-slides: resume disabled: %v\n", err)
		}
	}

	sceneIdx, slideIdx := *startScene, *startSlide
	startSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start-at", "start-at-scene-number", "start-at-slide-number":
			startSet = true
		}
	})
	if *startAt != "" {
		sceneIdx, slideIdx, err = parseStartAt(*startAt)
		if err != nil {
			if stateMgr != nil {
				stateMgr.Close()
			}
			return err
		}
	}

	startIndex, err := resolveStartIndex(scenes, slides, startSet, sceneIdx, slideIdx, stateMgr, key)
	if err != nil {
		if stateMgr != nil {
			stateMgr.Close()
		}
		return err
	}

	engine, err := playback.New(player.NewClock(), slides, playback.Options{
		StartIndex:    startIndex,
		StartPaused:   *startPaused,
		ExitAfterLast: *exitAfterLast,
		Rate:          *rate,
	})
	if err != nil {
		if stateMgr != nil {
			stateMgr.Close()
		}
		return err
	}
	defer engine.Close()
	if stateMgr != nil {
		defer stateMgr.Close()
	}

	if err := engine.Start(); err != nil {
		return err
	}

	m := app.New(cfg, strings.Join(names, " · "), key, resolution, engine, stateMgr)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// resolveStartIndex picks the opening slide: an explicit start
// directive wins, then the saved resume position, then slide zero.
func resolveStartIndex(scenes []*manifest.Scene, slides []manifest.Slide,
	startSet bool, sceneIdx, slideIdx int, stateMgr *state.Manager, key string,
) (int, error) {
	if startSet {
		return manifest.StartIndex(scenes, sceneIdx, slideIdx)
	}

	if stateMgr != nil {
		if r, err := stateMgr.GetResume(key); err == nil && r != nil {
			if r.SlideIndex > 0 && r.SlideIndex < len(slides) {
				return r.SlideIndex, nil
			}
		}
	}
	return 0, nil
}

// parseStartAt splits a "scene" or "scene,slide" directive into its
// two integer parts.
func parseStartAt(s string) (int, int, error) {
	scenePart, slidePart, hasSlide := strings.Cut(s, ",")
	sceneIdx, err := strconv.Atoi(scenePart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid -start-at %q: %v", s, err)
	}
	slideIdx := 0
	if hasSlide {
		slideIdx, err = strconv.Atoi(slidePart)
		if err != nil || slideIdx < 0 {
			return 0, 0, fmt.Errorf("invalid -start-at %q: slide must be a non-negative integer", s)
		}
	}
	return sceneIdx, slideIdx, nil
}

func resolveFolder(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return manifest.DefaultRoot
}

func resolveAgainst(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
