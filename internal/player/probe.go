package player

import (
	"errors"
	"os"
	"time"

	"github.com/abema/go-mp4"
)

// ProbeDuration reads the container duration of an MP4 asset without
// decoding any media. The rendering pipeline emits MP4 only, so this is
// the sole container format the presenter accepts.
func ProbeDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &AssetError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := mp4.Probe(f)
	if err != nil {
		return 0, &AssetError{Path: path, Err: err}
	}
	if info.Timescale == 0 {
		return 0, &AssetError{Path: path, Err: errors.New("container has no timescale")}
	}

	d := time.Duration(info.Duration) * time.Second / time.Duration(info.Timescale)
	if d <= 0 {
		return 0, &AssetError{Path: path, Err: errors.New("container reports zero duration")}
	}
	return d, nil
}
