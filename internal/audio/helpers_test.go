package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// constStreamer emits n samples of value on both channels.
type constStreamer struct {
	value  float64
	n      int
	closed bool
}

func (c *constStreamer) Stream(samples [][2]float64) (int, bool) {
	if c.n <= 0 {
		return 0, false
	}
	k := len(samples)
	if k > c.n {
		k = c.n
	}
	for i := 0; i < k; i++ {
		samples[i] = [2]float64{c.value, c.value}
	}
	c.n -= k
	return k, true
}

func (c *constStreamer) Err() error { return nil }

func (c *constStreamer) Close() error {
	c.closed = true
	return nil
}

type fakeOutput struct {
	mu       sync.Mutex
	streamer beep.Streamer
	closed   bool
}

func (o *fakeOutput) Start(s beep.Streamer) error {
	o.streamer = s
	return nil
}

func (o *fakeOutput) Lock()   { o.mu.Lock() }
func (o *fakeOutput) Unlock() { o.mu.Unlock() }

func (o *fakeOutput) Close() error {
	o.closed = true
	return nil
}

// pull reads n samples the way a device callback would.
func (o *fakeOutput) pull(n int) [][2]float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	buf := make([][2]float64, n)
	o.streamer.Stream(buf)
	return buf
}
