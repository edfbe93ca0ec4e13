package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the fixed colours of a frame. The trajectory colour is
// random per frame and is not part of a theme.
type Theme struct {
	Name  string
	Axes  lipgloss.Color
	Text  lipgloss.Color
	Muted lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:  "classic",
		Axes:  lipgloss.Color("#ffffff"),
		Text:  lipgloss.Color("#ffffff"),
		Muted: lipgloss.Color("#444466"),
	}

	ThemeRetroGreen = Theme{
		Name:  "retro",
		Axes:  lipgloss.Color("#ffffff"),
		Text:  lipgloss.Color("#00ff00"),
		Muted: lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:  "ocean",
		Axes:  lipgloss.Color("#ffffff"),
		Text:  lipgloss.Color("#e0f0ff"),
		Muted: lipgloss.Color("#4488aa"),
	}

	// Default theme
	CurrentTheme = ThemeClassic

	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
