package report

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qgpscan/internal/threshold"
)

// Curves returns the temperature and entropy-ratio series of results.
func Curves(results []threshold.Result) (temps, ratios []float64) {
	temps = make([]float64, len(results))
	ratios = make([]float64, len(results))
	for i, r := range results {
		temps[i] = r.Temperature
		ratios[i] = r.EntropyRatio
	}
	return temps, ratios
}

// Plots renders T and S/N over the scanned energies as two ASCII charts.
func Plots(results []threshold.Result, width, height int) []string {
	if len(results) == 0 {
		return nil
	}
	temps, ratios := Curves(results)

	lo, hi := results[0].Energy, results[len(results)-1].Energy
	return []string{
		asciigraph.Plot(temps,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(captionf("T (MeV) vs √s_NN", lo, hi)),
		),
		asciigraph.Plot(ratios,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(captionf("S/N vs √s_NN", lo, hi)),
		),
	}
}

func captionf(title string, lo, hi float64) string {
	return fmt.Sprintf("%s, %.1f - %.1f GeV", title, lo, hi)
}
