// Package hadron holds the exotic-hadron melting-temperature table.
//
// The values are reference data. They are not derived from the threshold
// model and nothing in this module links the two.
package hadron

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// QGPTransitionTemperature is the crossover temperature in MeV used to count
// which states have melted.
const QGPTransitionTemperature = 155.0

type Hadron struct {
	Name            string  `json:"hadron"`
	Mass            float64 `json:"mass"`   // MeV
	MeltTemperature float64 `json:"T_melt"` // MeV
}

// table is in source order; callers only ever see copies.
var table = []Hadron{
	{"X(3872)", 3872, 71.6},
	{"Zc(3900)", 3900, 75.7},
	{"Zc(4020)", 4020, 77.0},
	{"Y(4260)", 4260, 100.7},
	{"Zc(4430)", 4430, 103.9},
	{"X(4140)", 4140, 105.0},
	{"X(4274)", 4274, 106.9},
	{"X(4500)", 4500, 112.3},
	{"X(4700)", 4700, 113.6},
	{"Pc(4312)", 4312, 113.9},
	{"Pc(4440)", 4440, 114.2},
	{"Pc(4457)", 4457, 116.1},
	{"Pcs(4459)", 4459, 117.0},
	{"Tcc(3875)", 3875, 118.1},
	{"Zcs(3985)", 3985, 119.0},
	{"Zcs(4000)", 4000, 130.8},
	{"Zcs(4220)", 4220, 131.4},
	{"X(3915)", 3915, 133.0},
	{"X(3940)", 3940, 134.7},
	{"Y(4140)", 4140, 142.0},
	{"Y(4220)", 4220, 143.5},
	{"Y(4390)", 4390, 148.9},
	{"X(6900)", 6900, 155.0},
}

// All returns the table in source order.
func All() []Hadron {
	out := make([]Hadron, len(table))
	copy(out, table)
	return out
}

// SortedByMelt returns the table in ascending melting temperature.
func SortedByMelt() []Hadron {
	out := All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeltTemperature < out[j].MeltTemperature
	})
	return out
}

func Lookup(name string) (Hadron, bool) {
	for _, h := range table {
		if h.Name == name {
			return h, true
		}
	}
	return Hadron{}, false
}

// Stats summarises the melting temperatures.
type Stats struct {
	Count       int
	Min, Max    float64
	Mean        float64
	MeltedBelow int // strictly below QGPTransitionTemperature
}

func Summarize(hs []Hadron) Stats {
	if len(hs) == 0 {
		return Stats{}
	}
	temps := make([]float64, len(hs))
	melted := 0
	for i, h := range hs {
		temps[i] = h.MeltTemperature
		if h.MeltTemperature < QGPTransitionTemperature {
			melted++
		}
	}
	return Stats{
		Count:       len(hs),
		Min:         floats.Min(temps),
		Max:         floats.Max(temps),
		Mean:        floats.Sum(temps) / float64(len(temps)),
		MeltedBelow: melted,
	}
}

// MeltedAt returns the states whose melting temperature is at or below tMeV.
func MeltedAt(tMeV float64) []Hadron {
	var out []Hadron
	for _, h := range SortedByMelt() {
		if h.MeltTemperature <= tMeV {
			out = append(out, h)
		}
	}
	return out
}
