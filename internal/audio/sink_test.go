package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

func newTestSink(t *testing.T) (*Sink, *fakeOutput) {
	t.Helper()
	out := &fakeOutput{}
	s, err := newSink(out, testRate, 4, false)
	require.NoError(t, err)
	require.NotNil(t, out.streamer)
	return s, out
}

func TestSinkDefaults(t *testing.T) {
	s, _ := newTestSink(t)

	assert.False(t, s.IsPaused())
	assert.Equal(t, 1.0, s.Volume())
	assert.Equal(t, 0, s.Len())
}

func TestSinkAppendPlaysAtUnityGain(t *testing.T) {
	s, out := newTestSink(t)

	stream := &constStreamer{value: 0.25, n: 4}
	s.Append(stream, beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2})
	assert.Equal(t, 1, s.Len())

	buf := out.pull(6)
	assert.InDelta(t, 0.25, buf[0][0], 1e-9)
	assert.InDelta(t, 0.25, buf[3][1], 1e-9)
	assert.Equal(t, 0.0, buf[5][0])
	assert.True(t, stream.closed)
	assert.Equal(t, 0, s.Len())
}

func TestSinkAppendQueuesEachStream(t *testing.T) {
	s, _ := newTestSink(t)
	format := beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2}

	s.Append(&constStreamer{value: 0.1, n: 10}, format)
	s.Append(&constStreamer{value: 0.1, n: 10}, format)
	assert.Equal(t, 2, s.Len())
}

func TestSinkPauseHoldsQueue(t *testing.T) {
	s, out := newTestSink(t)
	s.Append(&constStreamer{value: 0.5, n: 4}, beep.Format{SampleRate: testRate, NumChannels: 2})

	s.Pause()
	assert.True(t, s.IsPaused())

	buf := out.pull(8)
	for _, sample := range buf {
		assert.Equal(t, [2]float64{}, sample)
	}
	assert.Equal(t, 1, s.Len())

	s.Play()
	assert.False(t, s.IsPaused())
	buf = out.pull(8)
	assert.InDelta(t, 0.5, buf[0][0], 1e-9)
}

func TestSinkVolumeClamped(t *testing.T) {
	s, out := newTestSink(t)

	s.SetVolume(1.7)
	assert.Equal(t, 1.0, s.Volume())

	s.SetVolume(-0.2)
	assert.Equal(t, 0.0, s.Volume())

	s.Append(&constStreamer{value: 0.5, n: 4}, beep.Format{SampleRate: testRate, NumChannels: 2})
	buf := out.pull(4)
	assert.Equal(t, 0.0, buf[0][0], "volume 0 is silent")

	s.SetVolume(0.5)
	assert.Equal(t, 0.5, s.Volume())
}

func TestSinkResamplesForeignRate(t *testing.T) {
	s, out := newTestSink(t)
	stream := &constStreamer{value: 0.5, n: 100}

	s.Append(stream, beep.Format{SampleRate: testRate / 2, NumChannels: 2, Precision: 2})
	out.pull(1000)

	assert.True(t, stream.closed)
	assert.Equal(t, 0, s.Len())
}

func TestSinkClose(t *testing.T) {
	s, out := newTestSink(t)
	stream := &constStreamer{value: 0.5, n: 100}
	s.Append(stream, beep.Format{SampleRate: testRate, NumChannels: 2})

	require.NoError(t, s.Close())
	assert.True(t, out.closed)
	assert.True(t, stream.closed)
	assert.Equal(t, 0, s.Len())
}
