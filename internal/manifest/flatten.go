package manifest

import "fmt"

// Flatten joins the scenes' slide groups into the single ordered
// sequence the engine plays, and computes the component-wise maximum
// resolution across scenes.
func Flatten(scenes []*Scene) ([]Slide, Resolution) {
	var res Resolution
	var slides []Slide
	for _, sc := range scenes {
		res = res.Max(sc.Resolution)
		slides = append(slides, sc.Slides...)
	}
	return slides, res
}

// StartIndex resolves a (scene, slide) start directive into a flat
// sequence index: the slide counts of all scenes preceding sceneIdx plus
// the intra-scene offset. Negative values count from the end, so
// (-1, 0) starts at the first slide of the last scene. A resulting
// index outside the sequence is an error.
func StartIndex(scenes []*Scene, sceneIdx, slideIdx int) (int, error) {
	total := 0
	for _, sc := range scenes {
		total += len(sc.Slides)
	}

	// Python-style slice semantics for the scene cut-off: negative
	// counts back from the end, clamped at zero.
	cut := sceneIdx
	if cut < 0 {
		cut += len(scenes)
		if cut < 0 {
			cut = 0
		}
	} else if cut > len(scenes) {
		cut = len(scenes)
	}

	index := slideIdx
	for _, sc := range scenes[:cut] {
		index += len(sc.Slides)
	}

	if index < 0 {
		return 0, fmt.Errorf("start position (%d, %d) resolves before the first slide", sceneIdx, slideIdx)
	}
	if index >= total {
		return 0, fmt.Errorf("start position (%d, %d) resolves past the last slide (%d of %d)", sceneIdx, slideIdx, index, total)
	}
	return index, nil
}
