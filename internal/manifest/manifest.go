// Package manifest loads and validates the per-scene slide manifests
// produced by the rendering pipeline, and flattens them into the single
// ordered sequence the playback engine runs over.
package manifest

import "fmt"

// Slide describes one playable unit: a forward transition video, its
// reversed counterpart, and the presentation flags attached to it.
// Slides are immutable once loaded.
type Slide struct {
	File      string // forward asset path
	RevFile   string // reverse asset path, same duration as File
	Thumbnail string // still image for presenter panels, may be empty
	Loop      bool   // repeat until explicitly advanced
	AutoNext  bool   // advance automatically on natural completion
	Notes     string // presenter-only free text
}

// Resolution is a display resolution in pixels.
type Resolution struct {
	Width  int
	Height int
}

// Max returns the component-wise maximum of two resolutions.
func (r Resolution) Max(o Resolution) Resolution {
	if o.Width > r.Width {
		r.Width = o.Width
	}
	if o.Height > r.Height {
		r.Height = o.Height
	}
	return r
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Scene is one source scene: an ordered group of slides sharing a
// resolution. Scene order and slide order together define the
// presentation order; nothing is ever re-sorted.
type Scene struct {
	Name       string
	Path       string // manifest file the scene was loaded from
	Resolution Resolution
	Slides     []Slide
}

// ConfigError reports a manifest that is missing, unparsable, or fails
// validation. Fatal when loading for playback; discovery listing only
// warns and skips.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scene manifest %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
