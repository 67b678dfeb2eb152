package app

import (
	"time"

	"github.com/tetofonta/manim-slides/internal/playback"
)

// TickMsg drives the periodic playhead refresh.
type TickMsg time.Time

// SlideChangedMsg wraps a playback.SlideChange event.
type SlideChangedMsg playback.SlideChange

// NoticeMsg wraps an informational playback notice.
type NoticeMsg playback.Notice

// PositionChangedMsg wraps an explicit seek event.
type PositionChangedMsg playback.PositionChange

// PlaybackErrorMsg wraps a playback error event.
type PlaybackErrorMsg playback.ErrorEvent

// ExhaustedMsg signals the end of the presentation.
type ExhaustedMsg struct{}

// EngineClosedMsg signals that the engine subscription was closed.
type EngineClosedMsg struct{}
