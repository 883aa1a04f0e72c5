// Package export renders threshold curves to SVG for use outside the terminal.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/qgpscan/internal/threshold"
)

var ErrTooFewPoints = errors.New("export: need at least two points")

// Series is one polyline on a shared energy axis.
type Series struct {
	Name   string
	Values []float64
	Stroke string
}

// Chart is an SVG line chart of one or more series against sqrt_s.
type Chart struct {
	Width    int
	Height   int
	Energies []float64
	Series   []Series
	// Marker draws a dashed horizontal line at this y value when set.
	Marker *float64
}

// RatioChart plots S/N over the scanned energies with the S/N = 1 marker.
func RatioChart(results []threshold.Result, width, height int) Chart {
	es := make([]float64, len(results))
	rs := make([]float64, len(results))
	for i, r := range results {
		es[i] = r.Energy
		rs[i] = r.EntropyRatio
	}
	one := 1.0
	return Chart{
		Width:    width,
		Height:   height,
		Energies: es,
		Series:   []Series{{Name: "S/N", Values: rs, Stroke: "#00ff00"}},
		Marker:   &one,
	}
}

// TemperatureChart plots T in MeV over the scanned energies.
func TemperatureChart(results []threshold.Result, width, height int) Chart {
	es := make([]float64, len(results))
	ts := make([]float64, len(results))
	for i, r := range results {
		es[i] = r.Energy
		ts[i] = r.Temperature
	}
	return Chart{
		Width:    width,
		Height:   height,
		Energies: es,
		Series:   []Series{{Name: "T (MeV)", Values: ts, Stroke: "#ffaa00"}},
	}
}

func (c Chart) bounds() (minX, maxX, minY, maxY float64) {
	minX, maxX = floats.Min(c.Energies), floats.Max(c.Energies)
	minY, maxY = floats.Min(c.Series[0].Values), floats.Max(c.Series[0].Values)
	for _, s := range c.Series[1:] {
		if v := floats.Min(s.Values); v < minY {
			minY = v
		}
		if v := floats.Max(s.Values); v > maxY {
			maxY = v
		}
	}
	if c.Marker != nil {
		if *c.Marker < minY {
			minY = *c.Marker
		}
		if *c.Marker > maxY {
			maxY = *c.Marker
		}
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	// 10% padding
	return minX - rangeX*0.1, maxX + rangeX*0.1, minY - rangeY*0.1, maxY + rangeY*0.1
}

// SVG renders the chart as a standalone SVG document.
func (c Chart) SVG() (string, error) {
	if len(c.Energies) < 2 || len(c.Series) == 0 {
		return "", ErrTooFewPoints
	}
	for _, s := range c.Series {
		if len(s.Values) != len(c.Energies) {
			return "", fmt.Errorf("export: series %q has %d values for %d energies", s.Name, len(s.Values), len(c.Energies))
		}
	}

	minX, maxX, minY, maxY := c.bounds()
	w, h := float64(c.Width), float64(c.Height)
	px := func(x float64) float64 { return (x - minX) / (maxX - minX) * w }
	py := func(y float64) float64 { return h - (y-minY)/(maxY-minY)*h }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, c.Width, c.Height, c.Width, c.Height)

	if c.Marker != nil {
		y := py(*c.Marker)
		fmt.Fprintf(&sb, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#ff4444" stroke-dasharray="6,4"/>
`, y, c.Width, y)
	}

	for _, s := range c.Series {
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, s.Stroke)
		for i, e := range c.Energies {
			if i > 0 {
				sb.WriteString(" L")
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", px(e), py(s.Values[i]))
		}
		fmt.Fprintf(&sb, "\"><title>%s</title></path>\n", s.Name)
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// WriteSVG writes the rendered chart to w.
func (c Chart) WriteSVG(w io.Writer) error {
	s, err := c.SVG()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
