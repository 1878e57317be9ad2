package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander-D-Karpov/tamp/internal/player"
	"github.com/Alexander-D-Karpov/tamp/internal/ui/themes"
	"github.com/Alexander-D-Karpov/tamp/pkg/types"
)

type fixedSize struct{ w, h int }

func (f fixedSize) Size() (int, int) { return f.w, f.h }

func testView() player.View {
	return player.View{
		Track: &types.Track{
			Path:     "/music/a.wav",
			Artist:   "Someone",
			FileType: "WAV",
		},
		Volume: 0.5,
		State:  types.PlaybackStatePlaying,
		Queued: 2,
		Status: "Queued a",
	}
}

func TestComposeFitsScreen(t *testing.T) {
	sizes := []fixedSize{{80, 24}, {120, 40}, {24, 10}, {37, 13}, {200, 60}}
	for _, size := range sizes {
		frame := Compose(testView(), size.w, size.h, themes.NewTheme("dark"))
		lines := strings.Split(frame, "\n")

		assert.Len(t, lines, size.h, "%dx%d", size.w, size.h)
		for i, line := range lines {
			assert.LessOrEqual(t, lipgloss.Width(line), size.w, "%dx%d line %d", size.w, size.h, i)
		}
	}
}

func TestComposeContent(t *testing.T) {
	frame := Compose(testView(), 100, 30, themes.NewTheme("light"))

	assert.Contains(t, frame, "Files")
	assert.Contains(t, frame, "a.wav")
	assert.Contains(t, frame, "PLAYING")
	assert.Contains(t, frame, "Volume  50%")
	assert.Contains(t, frame, "Queued 2")
	assert.Contains(t, frame, "Now Playing")
	assert.Contains(t, frame, "Someone")
	assert.Contains(t, frame, "q quit")
}

func TestComposeTooSmall(t *testing.T) {
	frame := Compose(testView(), 10, 5, themes.NewTheme("dark"))
	assert.Contains(t, frame, "terminal")
	assert.LessOrEqual(t, lipgloss.Width(frame), 10)
}

func TestScreenRenderWritesFrame(t *testing.T) {
	var buf bytes.Buffer
	s := &Screen{out: &buf, size: fixedSize{80, 24}, theme: themes.NewTheme("dark")}

	require.NoError(t, s.Render(testView()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, clearScreen))
	assert.Contains(t, out, "PLAYING")
	assert.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\n", "every newline carries a carriage return")
}

func TestScreenRenderPaused(t *testing.T) {
	var buf bytes.Buffer
	s := &Screen{out: &buf, size: fixedSize{80, 24}, theme: themes.NewTheme("dark")}

	v := testView()
	v.State = types.PlaybackStatePaused
	v.Status = "Cannot play a: boom"
	v.Failed = true
	require.NoError(t, s.Render(v))

	assert.Contains(t, buf.String(), "PAUSED")
	assert.Contains(t, buf.String(), "boom")
}
