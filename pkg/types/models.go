package types

import (
	"path/filepath"
	"strings"
)

type Track struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	FileType string `json:"file_type"`
}

// DisplayName returns the tagged title, or the file name without extension.
func (t *Track) DisplayName() string {
	if t == nil {
		return ""
	}
	if t.Title != "" {
		return t.Title
	}
	base := filepath.Base(t.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PlaybackState represents whether the sink is currently emitting audio
type PlaybackState int

const (
	PlaybackStatePlaying PlaybackState = iota
	PlaybackStatePaused
)

func (s PlaybackState) String() string {
	switch s {
	case PlaybackStatePlaying:
		return "Playing"
	case PlaybackStatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
