package player

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/Alexander-D-Karpov/tamp/internal/config"
	"github.com/Alexander-D-Karpov/tamp/pkg/types"
)

const volumeStep = 0.1

const (
	KeyQuit       = 'q'
	KeyInterrupt  = 0x03 // Ctrl-C arrives as a byte in raw mode
	KeyVolumeUp   = '+'
	KeyVolumeDown = '-'
	KeyToggle     = ' '
	KeyPlay       = 'p'
)

// View is what the renderer gets to draw each frame.
type View struct {
	Track  *types.Track
	Volume float64
	State  types.PlaybackState
	Queued int
	Status string
	Failed bool
}

// RenderFunc paints one frame. An error from it ends the control loop.
type RenderFunc func(View) error

// App holds the state of a single player session. It is owned by the goroutine
// running Run and is not safe for concurrent use.
type App struct {
	track   *types.Track
	sink    types.Sink
	decoder types.Decoder
	running bool
	status  string
	failed  bool
	debug   bool

	ignored rate.Sometimes
}

func NewApp(track *types.Track, sink types.Sink, decoder types.Decoder, debug bool) *App {
	return &App{
		track:   track,
		sink:    sink,
		decoder: decoder,
		running: true,
		status:  "Press p to play",
		debug:   debug,
		ignored: rate.Sometimes{Interval: time.Second},
	}
}

func (a *App) debugLog(format string, args ...interface{}) {
	if a.debug {
		log.Printf("[PLAYER] "+format, args...)
	}
}

func (a *App) Running() bool {
	return a.running
}

func (a *App) Status() string {
	return a.status
}

func (a *App) setStatus(failed bool, format string, args ...interface{}) {
	a.status = fmt.Sprintf(format, args...)
	a.failed = failed
}

func (a *App) Shutdown() {
	if !a.running {
		return
	}
	a.running = false
	a.debugLog("Shutting down")
}

func (a *App) View() View {
	state := types.PlaybackStatePlaying
	if a.sink.IsPaused() {
		state = types.PlaybackStatePaused
	}
	return View{
		Track:  a.track,
		Volume: a.sink.Volume(),
		State:  state,
		Queued: a.sink.Len(),
		Status: a.status,
		Failed: a.failed,
	}
}

// Run renders a frame, waits for the next key and handles it, until the user
// quits, keys is closed, or ctx is cancelled.
func (a *App) Run(ctx context.Context, keys <-chan rune, render RenderFunc) error {
	for a.running {
		if err := render(a.View()); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		select {
		case <-ctx.Done():
			a.debugLog("Context done: %v", ctx.Err())
			a.Shutdown()
		case key, ok := <-keys:
			if !ok {
				a.debugLog("Input closed")
				a.Shutdown()
				continue
			}
			a.HandleKey(key)
		}
	}
	return nil
}

// HandleKey applies the effect bound to key. Unbound keys are ignored.
func (a *App) HandleKey(key rune) {
	switch key {
	case KeyQuit, KeyInterrupt:
		a.Shutdown()
	case KeyVolumeUp:
		if v := a.sink.Volume(); v < 1.0 {
			a.sink.SetVolume(config.ClampVolume(v + volumeStep))
		}
		a.setStatus(false, "Volume %d%%", percent(a.sink.Volume()))
	case KeyVolumeDown:
		if v := a.sink.Volume(); v > 0.0 {
			a.sink.SetVolume(config.ClampVolume(v - volumeStep))
		}
		a.setStatus(false, "Volume %d%%", percent(a.sink.Volume()))
	case KeyToggle:
		if a.sink.IsPaused() {
			a.sink.Play()
			a.setStatus(false, "Resumed")
		} else {
			a.sink.Pause()
			a.setStatus(false, "Paused")
		}
	case KeyPlay:
		a.play()
	default:
		a.ignored.Do(func() {
			a.debugLog("Ignoring key %q", key)
		})
	}
}

// play decodes the current file again and queues it behind whatever is playing.
// A failure is reported in the status line and playback state is left untouched.
func (a *App) play() {
	stream, format, err := a.decoder.Decode(a.track.Path)
	if err != nil {
		a.setStatus(true, "Cannot play %s: %v", a.track.DisplayName(), err)
		a.debugLog("Failed to load %s: %v", a.track.Path, err)
		return
	}

	a.sink.Append(stream, format)
	a.setStatus(false, "Queued %s", a.track.DisplayName())
	a.debugLog("Appended %s, %d queued", a.track.Path, a.sink.Len())
}

func percent(v float64) int {
	return int(v*100 + 0.5)
}
