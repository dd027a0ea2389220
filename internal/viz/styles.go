package viz

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles of one theme.
type Styles struct {
	Theme Theme

	Panel   lipgloss.Style
	Title   lipgloss.Style
	Dot     lipgloss.Style
	Faint   lipgloss.Style
	Center  lipgloss.Style
	Marker  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Reset   lipgloss.Style
	KeyHint lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),
		Dot:    lipgloss.NewStyle().Foreground(t.Text),
		Faint:  lipgloss.NewStyle().Foreground(t.Muted).Faint(true),
		Center: lipgloss.NewStyle().Foreground(t.Text),
		Marker: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),
		Label: lipgloss.NewStyle().Foreground(t.Muted),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),
		Reset: lipgloss.NewStyle().Foreground(t.Accent),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
	}
}
