package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/Alexander-D-Karpov/tamp/pkg/types"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

var _ types.Decoder = (*FileDecoder)(nil)

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decodeFunc{
	".mp3":  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) },
	".wav":  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) },
	".flac": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) },
	".ogg":  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) },
	".oga":  func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) },
}

// FileDecoder opens audio files from disk and picks a beep decoder by extension.
type FileDecoder struct {
	debug bool
}

func NewFileDecoder(debug bool) *FileDecoder {
	return &FileDecoder{debug: debug}
}

// Supported reports whether path has an extension the decoder understands.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Decode opens path and returns a stream positioned at its first sample. The
// returned streamer owns the file and closes it on Close.
func (d *FileDecoder) Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open audio file: %w", err)
	}

	streamer, format, err := decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	if d.debug {
		log.Printf("[AUDIO] Decoded %s - Sample Rate: %d, Channels: %d, Length: %d samples",
			filepath.Base(path), format.SampleRate, format.NumChannels, streamer.Len())
	}
	return streamer, format, nil
}
