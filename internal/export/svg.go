package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gridpad/internal/viz"
)

func withAlpha(c lipgloss.Color) string {
	return viz.WithAlpha(c, borderAlpha)
}

// SVG renders s as a standalone SVG document.
func SVG(s Scene) string {
	size := s.Size()
	ext := s.Spec.Extent()
	text := string(s.Theme.Text)

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.2f %.2f">
<defs>
<linearGradient id="bg" x1="0" y1="1" x2="1" y2="0">
<stop offset="0" stop-color="%s"/>
<stop offset="1" stop-color="%s"/>
</linearGradient>
</defs>
<rect width="100%%" height="100%%" fill="%s"/>
<rect width="%.2f" height="%.2f" rx="%.1f" fill="url(#bg)" stroke="%s" stroke-width="%.1f"/>
`, size, size, ext, ext, gradientFrom, gradientTo, string(s.Theme.Background),
		ext, ext, cornerRadius, withAlpha(s.Theme.Text), borderWidth))

	for _, m := range s.marks() {
		if m.stroked {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.2f" opacity="%.1f"/>
`, m.center.X, m.center.Y, m.radius, text, s.Density.StrokeWidth(), m.opacity))
			continue
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" opacity="%.1f"/>
`, m.center.X, m.center.Y, m.radius, text, m.opacity))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
