package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sceneFile maps the on-disk JSON layout of a per-scene manifest.
type sceneFile struct {
	Resolution [2]int       `json:"resolution"`
	Slides     []slideEntry `json:"slides"`
}

type slideEntry struct {
	File      string `json:"file"`
	RevFile   string `json:"rev_file"`
	Thumbnail string `json:"thumbnail"`
	Loop      bool   `json:"loop"`
	AutoNext  bool   `json:"auto_next"`
	Notes     string `json:"notes"`
}

// LoadScene reads and validates a single scene manifest. Relative asset
// paths are resolved against the manifest's directory. Any failure is
// reported as a *ConfigError carrying the offending path.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var raw sceneFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	if raw.Resolution[0] <= 0 || raw.Resolution[1] <= 0 {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("resolution must be positive, got %dx%d", raw.Resolution[0], raw.Resolution[1])}
	}
	if len(raw.Slides) == 0 {
		return nil, &ConfigError{Path: path, Err: errors.New("scene has no slides")}
	}

	dir := filepath.Dir(path)
	scene := &Scene{
		Name:       sceneName(path),
		Path:       path,
		Resolution: Resolution{Width: raw.Resolution[0], Height: raw.Resolution[1]},
		Slides:     make([]Slide, 0, len(raw.Slides)),
	}

	for i, e := range raw.Slides {
		if e.File == "" {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("slide %d: missing file", i)}
		}
		if e.RevFile == "" {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("slide %d: missing rev_file", i)}
		}

		s := Slide{
			File:      resolvePath(dir, e.File),
			RevFile:   resolvePath(dir, e.RevFile),
			Loop:      e.Loop,
			AutoNext:  e.AutoNext,
			Notes:     e.Notes,
		}
		if e.Thumbnail != "" {
			s.Thumbnail = resolvePath(dir, e.Thumbnail)
		}

		for _, asset := range []string{s.File, s.RevFile} {
			if _, err := os.Stat(asset); err != nil {
				return nil, &ConfigError{Path: asset, Err: err}
			}
		}

		scene.Slides = append(scene.Slides, s)
	}

	return scene, nil
}

// LoadScenes loads the named scenes from folder, in order. Scene names
// resolve to <folder>/<name>.json.
func LoadScenes(folder string, names []string) ([]*Scene, error) {
	scenes := make([]*Scene, 0, len(names))
	for _, name := range names {
		scene, err := LoadScene(filepath.Join(folder, name+".json"))
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, scene)
	}
	return scenes, nil
}

func sceneName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
