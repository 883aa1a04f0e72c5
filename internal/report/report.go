// Package report renders solver output for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/qgpscan/internal/hadron"
	"github.com/san-kum/qgpscan/internal/thermo"
	"github.com/san-kum/qgpscan/internal/threshold"
)

func Banner(w io.Writer, title string, lines ...string) {
	fmt.Fprintln(w, Rule("="))
	fmt.Fprintln(w, TitleStyle.Render(title))
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w, Rule("="))
}

// Constants prints the parameters a report was computed with.
func Constants(w io.Writer, c thermo.ConstantSet) {
	fmt.Fprintln(w, HeaderStyle.Render("Key parameters:"))
	fmt.Fprintf(w, "  • N_part = %g\n", c.Participants)
	fmt.Fprintf(w, "  • K_inel = %g\n", c.Inelasticity)
	fmt.Fprintf(w, "  • k_g = %g (lattice QCD matching)\n", c.LatticeScale)
	fmt.Fprintf(w, "  • scale_factor = %g (unit conversion)\n", c.ScaleFactor)
	fmt.Fprintf(w, "  • R_nuc = %.3f fm, V0 = %.2f fm³\n", c.NuclearRadius(), c.Volume())
}

// ThresholdTable prints sqrt_s, T, S/N and phase for each result.
func ThresholdTable(w io.Writer, results []threshold.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, HeaderStyle.Render("√s_NN   T(MeV)    S/N      Phase"))
	fmt.Fprintln(w, Rule("-")[:45])
	for _, r := range results {
		fmt.Fprintf(w, "%6.1f  %7.1f  %8.3f  %s\n", r.Energy, r.Temperature, r.EntropyRatio, PhaseLabel(r.Phase, 8))
	}
}

func Transition(w io.Writer, t threshold.Transition) {
	fmt.Fprintln(w)
	if t.Found() {
		fmt.Fprintf(w, "Transition at √s_c = %.1f GeV\n", t.Energy)
		return
	}
	fmt.Fprintf(w, "%s\n", MismatchStyle.Render(fmt.Sprintf(
		"No transition in [%.1f, %.1f] GeV: S/N = %.3f at %.1f and %.3f at %.1f",
		t.Low, t.High, t.RatioLow, t.Low, t.RatioHigh, t.High)))
}

// ValidationTable prints computed values beside the reference values and
// marks the QGP crossing in the table when it falls between two rows.
func ValidationTable(w io.Writer, cs []threshold.Comparison) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, Rule("-"))
	fmt.Fprintln(w, HeaderStyle.Render("√s_NN    T_calc   T_exp    S/N_calc  S/N_exp   S/N(T_exp)  Phase      Match"))
	fmt.Fprintln(w, Rule("-"))
	for i, c := range cs {
		if i > 0 && cs[i-1].Result.EntropyRatio < thermo.CriticalRatio && c.Result.EntropyRatio > thermo.CriticalRatio {
			fmt.Fprintln(w, Rule("-"))
			fmt.Fprintln(w, BannerStyle.Render(">>> TRANSITION TO QGP <<<"))
			fmt.Fprintln(w, Rule("-"))
		}
		texp, rexp, rt := "     -", "     -", "     -"
		if c.HasRef {
			texp = fmt.Sprintf("%6.1f", c.Reference.Temperature)
			rexp = fmt.Sprintf("%6.3f", c.Reference.EntropyRatio)
			rt = fmt.Sprintf("%6.3f", c.RatioAtRefT)
		}
		fmt.Fprintf(w, "%6.1f   %7.1f  %s   %8.3f    %s    %s      %s   %s\n",
			c.Result.Energy, c.Result.Temperature, texp, c.Result.EntropyRatio, rexp, rt,
			PhaseLabel(c.Result.Phase, 8), MatchMark(c.Match))
	}
	fmt.Fprintln(w, Rule("-"))
}

func Crossings(w io.Writer, xs []threshold.Crossing) {
	if len(xs) == 0 {
		fmt.Fprintln(w, Subtle.Render("\nNo S/N = 1 crossing between sampled energies"))
		return
	}
	for _, x := range xs {
		fmt.Fprintf(w, "\n%s TRANSITION: %.1f < √s_c < %.1f GeV\n", MatchMark(true), x.Below, x.Above)
	}
}

// Summary prints the match count against the reference table.
func Summary(w io.Writer, cs []threshold.Comparison) {
	withRef := 0
	for _, c := range cs {
		if c.HasRef {
			withRef++
		}
	}
	matches := threshold.Matches(cs)
	fmt.Fprintf(w, "\nReference agreement: %d/%d within |ΔT| < %.0f MeV and |ΔS/N| < %.2f\n",
		matches, withRef, threshold.TemperatureTolerance, threshold.RatioTolerance)
	if matches < withRef {
		fmt.Fprintln(w, Subtle.Render("S/N(T_exp) is the model entropy ratio evaluated at the reference temperature."))
	}
}

func Sensitivity(w io.Writer, results []threshold.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, Rule("="))
	fmt.Fprintln(w, TitleStyle.Render("SENSITIVITY TEST: Varying K_inel"))
	fmt.Fprintln(w, Rule("="))
	for _, r := range results {
		fmt.Fprintf(w, "K = %.2f: T = %.1f MeV, S/N = %.3f → %s\n",
			r.Inelasticity, r.Temperature, r.EntropyRatio, PhaseLabel(r.Phase, 0))
	}

	if len(results) > 1 {
		same := true
		for _, r := range results[1:] {
			if r.Phase != results[0].Phase {
				same = false
			}
		}
		first, last := results[0].Inelasticity, results[len(results)-1].Inelasticity
		if same {
			fmt.Fprintf(w, "\nPhase unchanged for K_inel = %g to %g\n", first, last)
		} else {
			fmt.Fprintf(w, "\nPhase changes within K_inel = %g to %g\n", first, last)
		}
	}
}

func SystemSize(w io.Writer, energy float64, results []threshold.Result) {
	fmt.Fprintf(w, "\n%s\n", HeaderStyle.Render(fmt.Sprintf("System size scan at √s_NN = %.1f GeV", energy)))
	fmt.Fprintln(w, HeaderStyle.Render("N_part    T(MeV)    S/N       Phase"))
	fmt.Fprintln(w, Rule("-")[:45])
	for _, r := range results {
		fmt.Fprintf(w, "%6.0f  %8.1f  %8.3f   %s\n", r.Participants, r.Temperature, r.EntropyRatio, PhaseLabel(r.Phase, 8))
	}
}

// Melting prints the hadron table summary and, if verbose, every row.
func Melting(w io.Writer, hs []hadron.Hadron, verbose bool) {
	s := hadron.Summarize(hs)
	fmt.Fprintf(w, "\nMelting temperature range: %.1f - %.1f MeV\n", s.Min, s.Max)
	if x, ok := hadron.Lookup("X(6900)"); ok {
		fmt.Fprintf(w, "%s melts at: %.1f MeV (QGP transition)\n", x.Name, x.MeltTemperature)
	}
	fmt.Fprintf(w, "Number melted below %.0f MeV: %d/%d\n", hadron.QGPTransitionTemperature, s.MeltedBelow, s.Count)

	if !verbose {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, HeaderStyle.Render("Hadron        Mass(MeV)  T_melt(MeV)"))
	fmt.Fprintln(w, Rule("-")[:38])
	for _, h := range hs {
		fmt.Fprintf(w, "%-12s  %9.0f  %11.1f\n", h.Name, h.Mass, h.MeltTemperature)
	}
}

// Saved reports a written artifact.
func Saved(w io.Writer, what, path string) {
	fmt.Fprintf(w, "\n%s %s %s\n", MatchMark(true), what, strings.TrimSpace(path))
}
