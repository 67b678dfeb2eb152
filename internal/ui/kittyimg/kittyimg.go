// Package kittyimg provides Kitty terminal graphics protocol support
// for slide thumbnails.
package kittyimg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder for image.Decode
	"image/png"
	"os"
	"strings"

	"github.com/nfnt/resize"
)

const (
	chunkSize = 4096 // Max bytes per escape sequence chunk

	// Approximate pixel size of one terminal cell, used to downscale
	// thumbnails before transmission.
	cellPixelWidth  = 8
	cellPixelHeight = 16
)

// Supported reports whether the terminal understands the Kitty
// graphics protocol.
//
// The MANIM_SLIDES_GRAPHICS environment variable can override
// detection: "kitty" forces the protocol on, "none" disables it.
func Supported() bool {
	switch os.Getenv("MANIM_SLIDES_GRAPHICS") {
	case "kitty":
		return true
	case "none":
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM") == "xterm-kitty" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	return false
}

// EncodeFile reads a thumbnail image from disk, downscales it to fit
// the cell box and returns the escape sequence displaying it. Returns
// an empty string when the file cannot be read or decoded.
func EncodeFile(path string, cols, rows int) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	thumb := resize.Thumbnail(uint(cols*cellPixelWidth), uint(rows*cellPixelHeight), img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return ""
	}
	return Encode(buf.Bytes(), cols, rows)
}

// Encode converts PNG image data to a Kitty graphics protocol escape
// sequence displaying it at the specified column and row dimensions.
// Returns empty string if data is nil or empty.
func Encode(data []byte, cols, rows int) string {
	if len(data) == 0 {
		return ""
	}

	b64Data := base64.StdEncoding.EncodeToString(data)

	// Build the escape sequence(s)
	// Format: ESC _ G <params> ; <payload> ESC \
	// We use: a=T (transmit+display), f=100 (PNG), c=cols, r=rows
	var sb strings.Builder

	// Split into chunks if needed
	for i := 0; i < len(b64Data); i += chunkSize {
		end := min(i+chunkSize, len(b64Data))
		chunk := b64Data[i:end]

		// m=1 means more chunks follow, m=0 means last chunk
		more := 0
		if end < len(b64Data) {
			more = 1
		}

		if i == 0 {
			// First chunk includes all parameters
			sb.WriteString(fmt.Sprintf("\x1b_Ga=T,f=100,c=%d,r=%d,m=%d;%s\x1b\\", cols, rows, more, chunk))
		} else {
			// Subsequent chunks only have m parameter
			sb.WriteString(fmt.Sprintf("\x1b_Gm=%d;%s\x1b\\", more, chunk))
		}
	}

	return sb.String()
}

// Placeholder returns an ASCII art placeholder for a missing thumbnail.
func Placeholder(cols, rows int) string {
	if cols < 4 || rows < 2 {
		return ""
	}

	var lines []string

	// Top border
	lines = append(lines, "┌"+strings.Repeat("─", cols-2)+"┐")

	// Middle rows with a frame marker
	for i := 1; i < rows-1; i++ {
		if i == rows/2 && cols >= 5 {
			padding := (cols - 3) / 2
			line := "│" + strings.Repeat(" ", padding) + "▣" + strings.Repeat(" ", cols-3-padding) + "│"
			lines = append(lines, line)
		} else {
			lines = append(lines, "│"+strings.Repeat(" ", cols-2)+"│")
		}
	}

	// Bottom border
	lines = append(lines, "└"+strings.Repeat("─", cols-2)+"┘")

	return strings.Join(lines, "\n")
}
