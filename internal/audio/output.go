package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Alexander-D-Karpov/tamp/internal/config"
)

// Output is the hardware end of the sink. Start hands it the streamer it pulls
// samples from on its own goroutine; Lock and Unlock guard that streamer.
type Output interface {
	Start(s beep.Streamer) error
	Lock()
	Unlock()
	Close() error
}

var speakerInitialized = false
var speakerMutex sync.Mutex

type speakerOutput struct {
	sampleRate beep.SampleRate
	bufferSize int
	debug      bool
}

// NewOutput opens the backend named in cfg.Audio.Backend.
func NewOutput(cfg *config.Config) (Output, error) {
	sampleRate := beep.SampleRate(cfg.Audio.SampleRate)
	bufferSize := sampleRate.N(time.Duration(cfg.Audio.BufferMs) * time.Millisecond)

	switch cfg.Audio.Backend {
	case config.BackendPortAudio:
		return newPortAudioOutput(sampleRate, bufferSize, cfg.Debug), nil
	case config.BackendSpeaker, "":
		return &speakerOutput{sampleRate: sampleRate, bufferSize: bufferSize, debug: cfg.Debug}, nil
	default:
		return nil, fmt.Errorf("unknown audio backend %q", cfg.Audio.Backend)
	}
}

func (o *speakerOutput) Start(s beep.Streamer) error {
	speakerMutex.Lock()
	defer speakerMutex.Unlock()

	if !speakerInitialized {
		if o.debug {
			log.Printf("[AUDIO] Initializing speaker with sample rate %d, buffer size %d", o.sampleRate, o.bufferSize)
		}
		if err := speaker.Init(o.sampleRate, o.bufferSize); err != nil {
			return fmt.Errorf("speaker initialization failed: %w", err)
		}
		speakerInitialized = true
	}

	speaker.Play(s)
	return nil
}

func (o *speakerOutput) Lock()   { speaker.Lock() }
func (o *speakerOutput) Unlock() { speaker.Unlock() }

func (o *speakerOutput) Close() error {
	speakerMutex.Lock()
	defer speakerMutex.Unlock()

	if speakerInitialized {
		speaker.Clear()
		speaker.Close()
		speakerInitialized = false
		if o.debug {
			log.Printf("[AUDIO] Speaker closed")
		}
	}
	return nil
}
