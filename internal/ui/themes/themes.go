package themes

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Border lipgloss.Color
	Title  lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color
}

func NewTheme(variant string) Theme {
	if variant == "light" {
		return colorLight()
	}
	return colorDark()
}

func colorDark() Theme {
	return Theme{
		Border: lipgloss.Color("#3C3C46"),
		Title:  lipgloss.Color("#78A0FF"),
		Text:   lipgloss.Color("#FAFAFC"),
		Muted:  lipgloss.Color("#787882"),
		Accent: lipgloss.Color("#50C878"),
		Error:  lipgloss.Color("#FF5555"),
	}
}

func colorLight() Theme {
	return Theme{
		Border: lipgloss.Color("#C8C8D2"),
		Title:  lipgloss.Color("#3264C8"),
		Text:   lipgloss.Color("#141418"),
		Muted:  lipgloss.Color("#6E6E78"),
		Accent: lipgloss.Color("#1E8C46"),
		Error:  lipgloss.Color("#C82828"),
	}
}
