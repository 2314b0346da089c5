package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	primaryColor   = lipgloss.Color("#A78BFA") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	mutedColor     = lipgloss.Color("#9CA3AF") // Gray
)

// styles holds the text report styles bound to one output's renderer.
type styles struct {
	title     lipgloss.Style
	heading   lipgloss.Style
	section   lipgloss.Style
	rule      lipgloss.Style
	consensus lipgloss.Style
	muted     lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		title:     r.NewStyle().Bold(true).Foreground(primaryColor),
		heading:   r.NewStyle().Bold(true).Foreground(primaryColor),
		section:   r.NewStyle().Bold(true).Foreground(secondaryColor),
		rule:      r.NewStyle().Foreground(mutedColor),
		consensus: r.NewStyle().Foreground(warningColor),
		muted:     r.NewStyle().Foreground(mutedColor),
	}
}
