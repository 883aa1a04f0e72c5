package storage

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/qgpscan/internal/hadron"
	"github.com/san-kum/qgpscan/internal/threshold"
)

var (
	resultsHeader = []string{"sqrt_s(GeV)", "T(MeV)", "S/N", "phase"}
	meltingHeader = []string{"hadron", "T_melt(MeV)"}
	fullHeader    = []string{"sqrt_s", "k_inel", "n_part", "epsilon", "T", "S/N", "phase"}
)

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// formatShort is the shortest exact form, keeping ".0" on whole numbers.
func formatShort(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// WriteResults writes the report table: T to 0.1 MeV, S/N to 0.001.
func WriteResults(w io.Writer, results []threshold.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultsHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			formatShort(r.Energy),
			formatFloat(r.Temperature, 1),
			formatFloat(r.EntropyRatio, 3),
			r.Phase.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMelting writes hadrons in the given order.
func WriteMelting(w io.Writer, hs []hadron.Hadron) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(meltingHeader); err != nil {
		return err
	}
	for _, h := range hs {
		if err := cw.Write([]string{h.Name, formatShort(h.MeltTemperature)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeFullResults keeps full precision for LoadResults.
func writeFullResults(w io.Writer, results []threshold.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fullHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			formatFloat(r.Energy, -1),
			formatFloat(r.Inelasticity, -1),
			formatFloat(r.Participants, -1),
			formatFloat(r.EnergyDensity, -1),
			formatFloat(r.Temperature, -1),
			formatFloat(r.EntropyRatio, -1),
			r.Phase.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile creates path (and its directory) and hands it to write.
func WriteFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
