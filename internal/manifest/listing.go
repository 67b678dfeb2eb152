package manifest

import (
	"os"
	"path/filepath"
	"sort"
)

// SceneInfo summarizes one valid scene manifest found during discovery.
type SceneInfo struct {
	Name       string
	Path       string
	SlideCount int
	AssetBytes int64 // total size of forward+reverse assets on disk
}

// ListScenes scans folder for scene manifests. Unlike playback loading,
// discovery is tolerant: manifests that fail to parse or validate are
// skipped and reported in the second return value so callers can warn.
// Results are sorted by name for a stable selection menu.
func ListScenes(folder string) ([]SceneInfo, []error) {
	matches, err := filepath.Glob(filepath.Join(folder, "*.json"))
	if err != nil {
		return nil, []error{err}
	}

	var infos []SceneInfo
	var skipped []error
	for _, path := range matches {
		scene, err := LoadScene(path)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		infos = append(infos, SceneInfo{
			Name:       scene.Name,
			Path:       path,
			SlideCount: len(scene.Slides),
			AssetBytes: assetBytes(scene),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, skipped
}

func assetBytes(scene *Scene) int64 {
	var total int64
	for _, s := range scene.Slides {
		for _, asset := range []string{s.File, s.RevFile} {
			if fi, err := os.Stat(asset); err == nil {
				total += fi.Size()
			}
		}
	}
	return total
}
