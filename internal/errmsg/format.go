// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Manifest operations
	OpManifestLoad Op = "load scene manifest"
	OpManifestList Op = "list scenes"

	// Slide operations
	OpSlideLoad Op = "load slide"
	OpSlideJump Op = "jump to slide"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"

	// Resume state operations
	OpResumeLoad Op = "load resume position"
	OpResumeSave Op = "save resume position"

	// Thumbnail operations
	OpThumbnailLoad Op = "load slide thumbnail"

	// Initialization
	OpInitialize Op = "initialize presenter"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
