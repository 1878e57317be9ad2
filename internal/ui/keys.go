package ui

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// ReadKeys starts a goroutine that reads runes from r and sends them on the
// returned channel, one per keystroke. The channel is closed at EOF or on a
// read error. The goroutine blocks in Read and is not cancellable; it dies with
// the process.
func ReadKeys(r io.Reader) <-chan rune {
	keys := make(chan rune)
	go func() {
		defer close(keys)
		br := bufio.NewReader(r)
		for {
			key, size, err := br.ReadRune()
			if err != nil {
				return
			}
			if key == utf8.RuneError && size == 1 {
				continue
			}
			keys <- key
		}
	}()
	return keys
}
