package manifest

import (
	"encoding/json"
	"errors"
	"os"
)

// DefaultRoot is where rendered scenes land when the presentation
// manifest does not name a root directory.
const DefaultRoot = "./slides"

// Presentation is the optional top-level manifest that pins the scene
// order, written by the rendering pipeline:
//
//	{ "root": "./slides", "sequence": ["Intro", "Main", "Outro"] }
type Presentation struct {
	Root     string   `json:"root"`
	Sequence []string `json:"sequence"`
}

// LoadPresentation reads a presentation manifest. The root defaults to
// DefaultRoot when absent; an empty sequence is an error since there
// would be nothing to present.
func LoadPresentation(path string) (*Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var p Presentation
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if p.Root == "" {
		p.Root = DefaultRoot
	}
	if len(p.Sequence) == 0 {
		return nil, &ConfigError{Path: path, Err: errors.New("presentation has an empty sequence")}
	}
	return &p, nil
}
