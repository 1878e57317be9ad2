package audio

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/Alexander-D-Karpov/tamp/internal/config"
	"github.com/Alexander-D-Karpov/tamp/pkg/types"
)

var _ types.Sink = (*Sink)(nil)

// Sink queues decoded streams and plays them through an Output. The streamer
// chain is queue -> ctrl (pause) -> volume, and every field the output reads is
// only touched while holding the output lock.
type Sink struct {
	mu sync.Mutex

	out        Output
	sampleRate beep.SampleRate
	quality    int
	queue      *Queue
	ctrl       *beep.Ctrl
	gain       *effects.Volume
	volume     float64
	debug      bool
}

// NewSink opens the configured output device and starts streaming silence.
func NewSink(cfg *config.Config) (*Sink, error) {
	out, err := NewOutput(cfg)
	if err != nil {
		return nil, err
	}

	s, err := newSink(out, beep.SampleRate(cfg.Audio.SampleRate), cfg.Audio.ResampleQuality, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize audio output: %w", err)
	}
	s.SetVolume(cfg.Audio.DefaultVolume)
	return s, nil
}

func newSink(out Output, sampleRate beep.SampleRate, quality int, debug bool) (*Sink, error) {
	s := &Sink{
		out:        out,
		sampleRate: sampleRate,
		quality:    quality,
		queue:      NewQueue(),
		volume:     1,
		debug:      debug,
	}
	s.ctrl = &beep.Ctrl{Streamer: s.queue, Paused: false}
	s.gain = &effects.Volume{Streamer: s.ctrl, Base: 2}
	applyVolume(s.gain, s.volume)

	if err := out.Start(s.gain); err != nil {
		return nil, err
	}

	if debug {
		log.Printf("[AUDIO] Sink started with sample rate: %d", sampleRate)
	}
	return s, nil
}

// Append queues stream after anything already playing. Streams at a different
// sample rate are resampled to the output rate.
func (s *Sink) Append(stream beep.Streamer, format beep.Format) {
	var closer io.Closer
	if c, ok := stream.(io.Closer); ok {
		closer = c
	}

	var src beep.Streamer = stream
	if format.SampleRate != 0 && format.SampleRate != s.sampleRate {
		src = beep.Resample(s.quality, format.SampleRate, s.sampleRate, stream)
	}

	s.out.Lock()
	s.queue.Add(src, closer)
	queued := s.queue.Len()
	s.out.Unlock()

	if s.debug {
		log.Printf("[AUDIO] Appended stream (rate %d, channels %d), %d queued", format.SampleRate, format.NumChannels, queued)
	}
}

func (s *Sink) Play() {
	s.out.Lock()
	s.ctrl.Paused = false
	s.out.Unlock()

	if s.debug {
		log.Printf("[AUDIO] Resumed playback")
	}
}

func (s *Sink) Pause() {
	s.out.Lock()
	s.ctrl.Paused = true
	s.out.Unlock()

	if s.debug {
		log.Printf("[AUDIO] Paused playback")
	}
}

func (s *Sink) IsPaused() bool {
	s.out.Lock()
	defer s.out.Unlock()
	return s.ctrl.Paused
}

func (s *Sink) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// SetVolume sets the linear volume, clamped to [0, 1].
func (s *Sink) SetVolume(volume float64) {
	volume = config.ClampVolume(volume)

	s.mu.Lock()
	s.volume = volume
	s.mu.Unlock()

	s.out.Lock()
	applyVolume(s.gain, volume)
	s.out.Unlock()

	if s.debug {
		log.Printf("[AUDIO] Volume set to: %.1f", volume)
	}
}

// Len returns the number of streams queued, including the one playing.
func (s *Sink) Len() int {
	s.out.Lock()
	defer s.out.Unlock()
	return s.queue.Len()
}

func (s *Sink) Close() error {
	s.out.Lock()
	s.queue.Clear()
	s.out.Unlock()

	if s.debug {
		log.Printf("[AUDIO] Closing sink")
	}
	return s.out.Close()
}

// applyVolume maps linear [0, 1] onto the exponential beep volume, 1 being unity gain.
func applyVolume(v *effects.Volume, volume float64) {
	v.Volume = (volume - 1) * 5
	v.Silent = volume == 0
}
