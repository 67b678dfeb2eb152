package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Folder string `koanf:"folder"` // slide manifest folder, empty means ./slides
	Icons  string `koanf:"icons"`  // "nerd", "unicode", or "none"

	PlaybackRate       float64 `koanf:"playback_rate"`         // rate multiplier, 0 means 1.0
	StartPaused        bool    `koanf:"start_paused"`          // stage the first slide instead of playing it
	ExitAfterLastSlide bool    `koanf:"exit_after_last_slide"` // quit when the final slide finishes
	Presenter          bool    `koanf:"presenter"`             // open with the presenter view visible
	Resume             bool    `koanf:"resume"`                // restore the last slide position per presentation

	// Keys maps an action name to the keys bound to it, replacing the
	// defaults for that action.
	Keys map[string][]string `koanf:"keys"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Folder != "" {
		cfg.Folder = expandPath(cfg.Folder)
	}
	if cfg.PlaybackRate < 0 {
		return nil, fmt.Errorf("config: playback_rate must be positive, got %v", cfg.PlaybackRate)
	}
	if cfg.PlaybackRate == 0 {
		cfg.PlaybackRate = 1.0
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/manim-slides/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "manim-slides", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
