package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the hero panel
type Theme struct {
	Name       string
	Headline   lipgloss.Color
	HeadlineTo lipgloss.Color // gradient end for the headline
	Text       lipgloss.Color
	Caret      lipgloss.Color
	Border     lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeHero = Theme{
		Name:       "hero",
		Headline:   lipgloss.Color("#1f2937"), // gray-800
		HeadlineTo: lipgloss.Color("#4b5563"),
		Text:       lipgloss.Color("#3b82f6"), // blue-500
		Caret:      lipgloss.Color("#2563eb"), // blue-600
		Border:     lipgloss.Color("#818cf8"), // indigo-400
		Muted:      lipgloss.Color("#6b7280"),
		Error:      lipgloss.Color("#ef4444"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Headline:   lipgloss.Color("#ff00ff"),
		HeadlineTo: lipgloss.Color("#00ffff"),
		Text:       lipgloss.Color("#00ffff"),
		Caret:      lipgloss.Color("#ffff00"),
		Border:     lipgloss.Color("#444466"),
		Muted:      lipgloss.Color("#666666"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Headline:   lipgloss.Color("#00ff00"), // green phosphor
		HeadlineTo: lipgloss.Color("#00cc00"),
		Text:       lipgloss.Color("#00ff00"),
		Caret:      lipgloss.Color("#88ff88"),
		Border:     lipgloss.Color("#005500"),
		Muted:      lipgloss.Color("#005500"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Headline:   lipgloss.Color("#ffffff"),
		HeadlineTo: lipgloss.Color("#cccccc"),
		Text:       lipgloss.Color("#ffffff"),
		Caret:      lipgloss.Color("#0088ff"),
		Border:     lipgloss.Color("#888888"),
		Muted:      lipgloss.Color("#888888"),
		Error:      lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Headline:   lipgloss.Color("#0077be"),
		HeadlineTo: lipgloss.Color("#00a8cc"),
		Text:       lipgloss.Color("#e0f0ff"),
		Caret:      lipgloss.Color("#ffd700"),
		Border:     lipgloss.Color("#4488aa"),
		Muted:      lipgloss.Color("#4488aa"),
		Error:      lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Headline:   lipgloss.Color("#ff6b6b"), // coral
		HeadlineTo: lipgloss.Color("#feca57"),
		Text:       lipgloss.Color("#fff5f5"),
		Caret:      lipgloss.Color("#ff9ff3"),
		Border:     lipgloss.Color("#8b6b8c"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Error:      lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{
		ThemeHero,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the hero theme
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeHero
}

// NextTheme returns the theme after name, wrapping around
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
