package ui

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func collect(ch <-chan rune) []rune {
	var keys []rune
	for k := range ch {
		keys = append(keys, k)
	}
	return keys
}

func TestReadKeysUntilEOF(t *testing.T) {
	keys := collect(ReadKeys(strings.NewReader("p+ -q")))
	assert.Equal(t, []rune{'p', '+', ' ', '-', 'q'}, keys)
}

func TestReadKeysMultibyte(t *testing.T) {
	keys := collect(ReadKeys(strings.NewReader("é\x03")))
	assert.Equal(t, []rune{'é', 0x03}, keys)
}

func TestReadKeysSkipsInvalidBytes(t *testing.T) {
	keys := collect(ReadKeys(strings.NewReader("a\xffb")))
	assert.Equal(t, []rune{'a', 'b'}, keys)
}

func TestReadKeysClosesOnError(t *testing.T) {
	r := iotest.TimeoutReader(strings.NewReader("x"))
	keys := collect(ReadKeys(iotest.OneByteReader(r)))
	assert.Equal(t, []rune{'x'}, keys)

	keys = collect(ReadKeys(iotest.ErrReader(errors.New("tty gone"))))
	assert.Empty(t, keys)
}
