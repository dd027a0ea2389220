// Package viz holds the terminal look of the pad: color themes, the lipgloss
// styles derived from them, and a styled rune canvas the shell draws on.
//
// Five themes ship built in; the marker always takes the theme's text color
// and faint dots take its muted color.
package viz
