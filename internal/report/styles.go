package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/qgpscan/internal/thermo"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	QGPStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	HadronicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff"))

	MatchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	MismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00"))

	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff00ff"))
)

const ruleWidth = 70

// Rule is a full-width separator line.
func Rule(ch string) string {
	return strings.Repeat(ch, ruleWidth)
}

// PhaseLabel renders a phase padded to width before styling so columns line up.
func PhaseLabel(p thermo.Phase, width int) string {
	label := p.String()
	if pad := width - len(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	if p == thermo.QGP {
		return QGPStyle.Render(label)
	}
	return HadronicStyle.Render(label)
}

func MatchMark(ok bool) string {
	if ok {
		return MatchStyle.Render("✓")
	}
	return MismatchStyle.Render("×")
}
