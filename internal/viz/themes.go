package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines color scheme for the pad
type Theme struct {
	Name       string
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Border     lipgloss.Color
}

// Available themes
var (
	ThemeMinimal = Theme{
		Name:       "minimal",
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Border:     lipgloss.Color("#444444"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Text:       lipgloss.Color("#00ffff"), // Cyan
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#ff00ff"), // Magenta
		Background: lipgloss.Color("#0a0a0a"),
		Border:     lipgloss.Color("#444466"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Text:       lipgloss.Color("#00ff00"), // Green phosphor
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#88ff88"),
		Background: lipgloss.Color("#001100"),
		Border:     lipgloss.Color("#003300"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#ffd700"),
		Background: lipgloss.Color("#001a33"),
		Border:     lipgloss.Color("#0077be"), // Ocean blue
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#ff9ff3"),
		Background: lipgloss.Color("#2d1b2e"),
		Border:     lipgloss.Color("#ff6b6b"), // Coral
	}

	Themes = []Theme{
		ThemeMinimal,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to minimal.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMinimal
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// WithAlpha appends a two-digit hex alpha to a #rrggbb color.
func WithAlpha(c lipgloss.Color, alpha uint8) string {
	hex := strings.TrimPrefix(string(c), "#")
	if len(hex) != 6 {
		hex = "ffffff"
	}
	return fmt.Sprintf("#%s%02x", hex, alpha)
}
