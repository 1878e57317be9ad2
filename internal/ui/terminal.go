package ui

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"

	fallbackWidth  = 80
	fallbackHeight = 24
)

// Terminal owns the tty for the lifetime of the player. When input is not a
// terminal (piped keys) raw mode is skipped and the rest still works.
type Terminal struct {
	in    *os.File
	out   io.Writer
	outFd int
	state *term.State
	debug bool
}

func NewTerminal(in, out *os.File, debug bool) *Terminal {
	return &Terminal{in: in, out: out, outFd: int(out.Fd()), debug: debug}
}

// EnterRaw switches input to raw mode and hides the cursor. Callers must defer
// Restore right after a successful call.
func (t *Terminal) EnterRaw() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		if t.debug {
			log.Printf("[UI] Input is not a terminal, skipping raw mode")
		}
		return nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.state = state

	_, err = io.WriteString(t.out, hideCursor+clearScreen)
	return err
}

// Restore puts the terminal back the way EnterRaw found it. Safe to call more than once.
func (t *Terminal) Restore() error {
	if t.state == nil {
		return nil
	}
	state := t.state
	t.state = nil

	io.WriteString(t.out, clearScreen+showCursor)
	if err := term.Restore(int(t.in.Fd()), state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

func (t *Terminal) Size() (width, height int) {
	w, h, err := term.GetSize(t.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// Draw replaces the screen contents with frame.
func (t *Terminal) Draw(frame string) error {
	return writeFrame(t.out, frame)
}

func writeFrame(w io.Writer, frame string) error {
	// raw mode disables output post-processing, so "\n" alone would not return the carriage
	frame = strings.ReplaceAll(frame, "\n", "\r\n")
	if _, err := io.WriteString(w, clearScreen+frame); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}
