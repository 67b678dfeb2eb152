package manifest

import "testing"

func scene(name string, w, h, slides int) *Scene {
	sc := &Scene{Name: name, Resolution: Resolution{w, h}}
	for i := 0; i < slides; i++ {
		sc.Slides = append(sc.Slides, Slide{File: name, RevFile: name})
	}
	return sc
}

func TestFlatten_ResolutionIsComponentwiseMax(t *testing.T) {
	scenes := []*Scene{
		scene("A", 800, 600, 2),
		scene("B", 1920, 1080, 3),
	}

	slides, res := Flatten(scenes)

	if res != (Resolution{1920, 1080}) {
		t.Errorf("resolution = %v, want 1920x1080", res)
	}
	if len(slides) != 5 {
		t.Errorf("len(slides) = %d, want 5", len(slides))
	}
}

func TestFlatten_MixedComponents(t *testing.T) {
	// Max is taken per component, not per scene.
	scenes := []*Scene{
		scene("A", 2000, 600, 1),
		scene("B", 800, 1080, 1),
	}

	_, res := Flatten(scenes)

	if res != (Resolution{2000, 1080}) {
		t.Errorf("resolution = %v, want 2000x1080", res)
	}
}

func TestFlatten_PreservesOrder(t *testing.T) {
	scenes := []*Scene{scene("A", 1, 1, 2), scene("B", 1, 1, 1)}

	slides, _ := Flatten(scenes)

	want := []string{"A", "A", "B"}
	for i, w := range want {
		if slides[i].File != w {
			t.Errorf("slides[%d].File = %q, want %q", i, slides[i].File, w)
		}
	}
}

func TestStartIndex(t *testing.T) {
	scenes := []*Scene{
		scene("A", 1, 1, 3),
		scene("B", 1, 1, 2),
		scene("C", 1, 1, 4),
	}

	cases := []struct {
		name       string
		sceneIdx   int
		slideIdx   int
		want       int
		wantErr    bool
	}{
		{"first", 0, 0, 0, false},
		{"intra-scene offset", 0, 2, 2, false},
		{"second scene", 1, 0, 3, false},
		{"third scene offset", 2, 1, 6, false},
		{"negative scene counts from end", -1, 0, 5, false},
		{"negative slide", 0, -1, 0, true},
		{"negative slide within later scene", 1, -1, 2, false},
		{"past the end", 2, 4, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := StartIndex(scenes, tc.sceneIdx, tc.slideIdx)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("StartIndex(%d, %d) = %d, want error", tc.sceneIdx, tc.slideIdx, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("StartIndex(%d, %d) error: %v", tc.sceneIdx, tc.slideIdx, err)
			}
			if got != tc.want {
				t.Errorf("StartIndex(%d, %d) = %d, want %d", tc.sceneIdx, tc.slideIdx, got, tc.want)
			}
		})
	}
}
