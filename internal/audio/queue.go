package audio

import (
	"io"

	"github.com/gopxl/beep"
)

type queueItem struct {
	streamer beep.Streamer
	closer   io.Closer
}

// Queue plays streamers one after another and streams silence while empty, so
// the output keeps pulling from it for the whole process lifetime. It is not
// safe for concurrent use; callers hold the output lock.
type Queue struct {
	items []queueItem
	err   error
}

func NewQueue() *Queue {
	return &Queue{}
}

// Add appends s. If closer is non-nil it is closed once s is drained.
func (q *Queue) Add(s beep.Streamer, closer io.Closer) {
	q.items = append(q.items, queueItem{streamer: s, closer: closer})
}

func (q *Queue) Len() int {
	return len(q.items)
}

func (q *Queue) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		if len(q.items) == 0 {
			for i := range samples[filled:] {
				samples[filled+i] = [2]float64{}
			}
			break
		}

		head := q.items[0]
		n, ok := head.streamer.Stream(samples[filled:])
		if !ok {
			if err := head.streamer.Err(); err != nil {
				q.err = err
			}
			if head.closer != nil {
				head.closer.Close()
			}
			q.items[0] = queueItem{}
			q.items = q.items[1:]
		}
		filled += n
		if ok && n == 0 {
			// stalled streamer: pad this buffer and retry on the next pull
			for i := range samples[filled:] {
				samples[filled+i] = [2]float64{}
			}
			break
		}
	}
	return len(samples), true
}

// Err reports the last error returned by a drained streamer.
func (q *Queue) Err() error {
	return q.err
}

// Clear drops and closes every queued streamer.
func (q *Queue) Clear() {
	for _, item := range q.items {
		if item.closer != nil {
			item.closer.Close()
		}
	}
	q.items = nil
}
