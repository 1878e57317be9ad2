package types

import (
	"github.com/gopxl/beep"
)

// Sink defines an audio destination that queues decoded streams and plays them in order
type Sink interface {
	Append(stream beep.Streamer, format beep.Format)
	Play()
	Pause()
	IsPaused() bool
	Volume() float64
	SetVolume(volume float64)
	Len() int
}

// Decoder defines the interface for turning an audio file into a sample stream
type Decoder interface {
	Decode(path string) (beep.StreamSeekCloser, beep.Format, error)
}
