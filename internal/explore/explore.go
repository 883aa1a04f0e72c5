// Package explore is an interactive terminal view of the threshold model.
package explore

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/qgpscan/internal/thermo"
	"github.com/san-kum/qgpscan/internal/threshold"
)

const gridPoints = 60

var (
	panelStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444466")).Padding(1, 2)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type param struct {
	name     string
	value    float64
	min, max float64
	factor   float64
}

// Model holds the explorer state. Every key press rebuilds the solver from
// the base constants, so the base set is never modified.
type Model struct {
	base     thermo.ConstantSet
	opts     threshold.Options
	params   []param
	selected int
	maxE     float64

	result threshold.Result
	curve  []float64
	err    error
}

// New starts the explorer at sqrtS with the inelasticity and N_part of c.
func New(c thermo.ConstantSet, opts threshold.Options, sqrtS, maxEnergy float64) Model {
	m := Model{
		base: c,
		opts: opts,
		maxE: maxEnergy,
		params: []param{
			{name: "sqrt_s", value: sqrtS, min: c.Threshold() + 0.1, max: maxEnergy, factor: 1.05},
			{name: "k_inel", value: c.Inelasticity, min: 0.05, max: 1.0, factor: 1.02},
			{name: "n_part", value: c.Participants, min: 2, max: 2 * c.MassNumber, factor: 1.05},
		},
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(m.params)
		case "shift+tab":
			m.selected = (m.selected + len(m.params) - 1) % len(m.params)
		case "up", "k":
			m.adjust(true)
		case "down", "j":
			m.adjust(false)
		case "r":
			return New(m.base, m.opts, m.params[0].value, m.maxE), nil
		}
	}
	return m, nil
}

func (m *Model) adjust(up bool) {
	p := &m.params[m.selected]
	if up {
		p.value *= p.factor
	} else {
		p.value /= p.factor
	}
	p.value = math.Max(p.min, math.Min(p.max, p.value))
	m.recompute()
}

func (m *Model) recompute() {
	c := m.base.WithInelasticity(m.params[1].value).WithParticipants(m.params[2].value)
	s, err := threshold.New(c, m.opts)
	if err != nil {
		m.err = err
		return
	}

	m.result, m.err = s.CalculateDefault(m.params[0].value)
	if m.err != nil {
		return
	}

	grid := make([]float64, gridPoints)
	floats.Span(grid, m.params[0].min, m.maxE)
	curve := make([]float64, 0, gridPoints)
	for _, e := range grid {
		r, err := s.CalculateDefault(e)
		if err != nil {
			continue
		}
		curve = append(curve, r.EntropyRatio)
	}
	m.curve = curve
}

// Result is the currently displayed evaluation.
func (m Model) Result() threshold.Result { return m.result }

func (m Model) Err() error { return m.err }

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("QGP THRESHOLD EXPLORER") + "\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	} else {
		r := m.result
		s.WriteString(labelStyle.Render("T") + valueStyle.Render(fmt.Sprintf("%.1f MeV", r.Temperature)) + "\n")
		s.WriteString(labelStyle.Render("S/N") + valueStyle.Render(fmt.Sprintf("%.3f", r.EntropyRatio)) + "\n")
		s.WriteString(labelStyle.Render("epsilon") + valueStyle.Render(fmt.Sprintf("%.3f GeV/fm³", r.EnergyDensity)) + "\n")
		s.WriteString(labelStyle.Render("Phase") + valueStyle.Render(r.Phase.String()) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	for i, p := range m.params {
		line := fmt.Sprintf("%-8s %10.3f", p.name, p.value)
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}

	if len(m.curve) > 1 {
		chart := asciigraph.Plot(m.curve,
			asciigraph.Height(8),
			asciigraph.Width(50),
			asciigraph.Caption("S/N vs sqrt_s"),
		)
		s.WriteString("\n" + chart + "\n")
	}

	s.WriteString(helpStyle.Render("TAB:Param ↑↓:Tune R:Reset Q:Quit"))
	return panelStyle.Render(s.String())
}

// Run starts the explorer on the terminal.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
