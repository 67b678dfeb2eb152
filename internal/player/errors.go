package player

import "fmt"

// AssetError reports a media asset that could not be opened or probed.
type AssetError struct {
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("media asset %s: %v", e.Path, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }
