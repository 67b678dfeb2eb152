package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSlideLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpSlideLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load slide: file not found",
		},
		{
			name:     "manifest operation",
			op:       OpManifestLoad,
			err:      errors.New("permission denied"),
			expected: "Failed to load scene manifest: permission denied",
		},
		{
			name:     "resume operation",
			op:       OpResumeSave,
			err:      errors.New("database locked"),
			expected: "Failed to save resume position: database locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	err := errors.New("no such scene")
	got := FormatWith(OpManifestLoad, "BasicExample", err)
	want := "Failed to load scene manifest 'BasicExample': no such scene"
	if got != want {
		t.Errorf("FormatWith = %q, want %q", got, want)
	}

	if got := FormatWith(OpManifestLoad, "", err); got != Format(OpManifestLoad, err) {
		t.Errorf("empty context should fall back to Format, got %q", got)
	}

	if got := FormatWith(OpManifestLoad, "BasicExample", nil); got != "" {
		t.Errorf("nil error should return empty string, got %q", got)
	}
}
