package ui

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Alexander-D-Karpov/tamp/internal/player"
	"github.com/Alexander-D-Karpov/tamp/internal/ui/themes"
	"github.com/Alexander-D-Karpov/tamp/pkg/types"
)

const (
	minWidth  = 24
	minHeight = 10

	helpText = "p play  space pause  +/- volume  q quit"
)

type sizer interface {
	Size() (width, height int)
}

// Screen draws player views onto a terminal.
type Screen struct {
	out   io.Writer
	size  sizer
	theme themes.Theme
	debug bool
}

func NewScreen(t *Terminal, theme themes.Theme, debug bool) *Screen {
	return &Screen{out: t.out, size: t, theme: theme, debug: debug}
}

// Render paints v at the current terminal size. It satisfies player.RenderFunc.
func (s *Screen) Render(v player.View) error {
	width, height := s.size.Size()
	if s.debug {
		log.Printf("[UI] Rendering %dx%d frame: %s, volume %.1f, %d queued", width, height, v.State, v.Volume, v.Queued)
	}
	return writeFrame(s.out, Compose(v, width, height, s.theme))
}

// Compose renders the whole frame as a string of exactly height lines, none
// wider than width.
func Compose(v player.View, width, height int, theme themes.Theme) string {
	if width < minWidth || height < minHeight {
		msg := runewidth.Truncate("terminal too small", width, "")
		return lipgloss.NewStyle().Foreground(theme.Error).Render(msg)
	}

	r := Compute(width, height)

	files := filesPane(v.Track, r.Files, theme)
	right := lipgloss.JoinVertical(lipgloss.Left,
		statusPane(v, r.Status, theme),
		bodyPane(v.Track, r.Body, theme),
	)
	right = lipgloss.NewStyle().Padding(1).Render(right)

	return lipgloss.NewStyle().Margin(1).Render(lipgloss.JoinHorizontal(lipgloss.Top, files, right))
}

func filesPane(track *types.Track, r Rect, theme themes.Theme) string {
	inner := r.Width - 2
	lines := []string{titleLine("Files", inner, theme)}
	if track != nil {
		name := runewidth.Truncate("> "+filepath.Base(track.Path), inner, "…")
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Render(name))
	}
	return box(lines, r, theme)
}

func statusPane(v player.View, r Rect, theme themes.Theme) string {
	state := lipgloss.NewStyle().Bold(true).Foreground(theme.Title).Render(strings.ToUpper(v.State.String()))
	lines := []string{
		state,
		fit(fmt.Sprintf("Volume %3d%%  Queued %d", int(v.Volume*100+0.5), v.Queued), r.Width),
	}

	if v.Status != "" {
		color := theme.Muted
		if v.Failed {
			color = theme.Error
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(color).Render(fit(v.Status, r.Width)))
	}

	if len(lines) > r.Height {
		lines = lines[:r.Height]
	}

	return lipgloss.NewStyle().
		Width(r.Width).
		Height(r.Height).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func bodyPane(track *types.Track, r Rect, theme themes.Theme) string {
	inner := r.Width - 2
	lines := []string{titleLine("Now Playing", inner, theme)}

	if track != nil {
		label := lipgloss.NewStyle().Foreground(theme.Muted)
		value := lipgloss.NewStyle().Foreground(theme.Text)
		field := func(name, v string) {
			if v == "" {
				return
			}
			lines = append(lines, label.Render(name+" ")+value.Render(fit(v, inner-len(name)-1)))
		}
		field("Title ", track.DisplayName())
		field("Artist", track.Artist)
		field("Album ", track.Album)
		field("Format", track.FileType)
	}

	lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Muted).Render(fit(helpText, inner)))
	return box(lines, r, theme)
}

func titleLine(title string, width int, theme themes.Theme) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Title).Render(fit(title, width))
}

// box draws lines inside a border that fills r exactly.
func box(lines []string, r Rect, theme themes.Theme) string {
	innerHeight := r.Height - 2
	if innerHeight < 0 {
		innerHeight = 0
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(r.Width - 2).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
