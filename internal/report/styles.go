package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// heatRamp runs from cold to hot in the 256-colour palette.
var heatRamp = []string{"196", "202", "208", "214", "220", "226", "190", "154", "118", "82", "46"}

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	hand   lipgloss.Style
	equity lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
	cell   lipgloss.Style
	heat   []lipgloss.Style
}

func newStyles(w io.Writer, profile termenv.Profile) styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	s := styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		hand:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		equity: r.NewStyle().Foreground(lipgloss.Color("10")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("8")),
		warn:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		cell:   r.NewStyle().Padding(0, 1),
	}
	for _, c := range heatRamp {
		s.heat = append(s.heat, s.cell.Foreground(lipgloss.Color("0")).Background(lipgloss.Color(c)))
	}
	return s
}

// shade picks a heat style for v scaled between lo and hi.
func (s styles) shade(v, lo, hi float64) lipgloss.Style {
	if hi <= lo {
		return s.heat[len(s.heat)-1]
	}
	i := int((v - lo) / (hi - lo) * float64(len(s.heat)-1))
	i = min(max(i, 0), len(s.heat)-1)
	return s.heat[i]
}
