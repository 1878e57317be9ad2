package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gordonklaus/portaudio"
)

type portAudioOutput struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	frames     int
	stream     *portaudio.Stream
	source     beep.Streamer
	buf        [][2]float64
	debug      bool
}

func newPortAudioOutput(sampleRate beep.SampleRate, frames int, debug bool) *portAudioOutput {
	return &portAudioOutput{sampleRate: sampleRate, frames: frames, debug: debug}
}

func (o *portAudioOutput) Start(s beep.Streamer) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio initialization failed: %w", err)
	}

	o.mu.Lock()
	o.source = s
	o.mu.Unlock()

	stream, err := portaudio.OpenDefaultStream(0, 2, float64(o.sampleRate), o.frames, o.fill)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("open default stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("start stream: %w", err)
	}
	o.stream = stream

	if o.debug {
		log.Printf("[AUDIO] PortAudio stream started at %d Hz, %d frames per buffer", o.sampleRate, o.frames)
	}
	return nil
}

// fill runs on the PortAudio callback thread.
func (o *portAudioOutput) fill(out [][]float32) {
	o.mu.Lock()
	defer o.mu.Unlock()

	n := len(out[0])
	if cap(o.buf) < n {
		o.buf = make([][2]float64, n)
	}
	tmp := o.buf[:n]

	filled := 0
	if o.source != nil {
		filled, _ = o.source.Stream(tmp)
	}
	for i := 0; i < n; i++ {
		if i >= filled {
			out[0][i], out[1][i] = 0, 0
			continue
		}
		out[0][i] = float32(tmp[i][0])
		out[1][i] = float32(tmp[i][1])
	}
}

func (o *portAudioOutput) Lock()   { o.mu.Lock() }
func (o *portAudioOutput) Unlock() { o.mu.Unlock() }

func (o *portAudioOutput) Close() error {
	if o.stream == nil {
		return nil
	}
	if err := o.stream.Stop(); err != nil && o.debug {
		log.Printf("[AUDIO] Error stopping stream: %v", err)
	}
	err := o.stream.Close()
	o.stream = nil
	portaudio.Terminate()
	return err
}
