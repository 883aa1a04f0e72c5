package threshold

import "math"

// Reference is a published (T, S/N) pair for one collision energy.
type Reference struct {
	Energy       float64 `yaml:"sqrt_s" json:"sqrt_s"`
	Temperature  float64 `yaml:"temperature" json:"temperature"`
	EntropyRatio float64 `yaml:"entropy_ratio" json:"entropy_ratio"`
}

// Match tolerances used by CompareReference.
const (
	TemperatureTolerance = 1.0  // MeV
	RatioTolerance       = 0.01 // dimensionless
)

// ReferenceTable is the Au+Au central table the model is validated against.
var ReferenceTable = []Reference{
	{7.7, 153.028, 0.906},
	{11.5, 155.006, 0.942},
	{14.5, 156.568, 0.971},
	{19.6, 159.223, 1.021},
	{27.0, 163.076, 1.097},
	{39.0, 169.323, 1.228},
	{62.4, 181.506, 1.512},
	{200.0, 253.144, 4.102},
}

// ReferenceEnergies returns the energies of ReferenceTable.
func ReferenceEnergies() []float64 {
	out := make([]float64, len(ReferenceTable))
	for i, r := range ReferenceTable {
		out[i] = r.Energy
	}
	return out
}

// Comparison pairs a computed result with its reference entry.
type Comparison struct {
	Result     Result
	Reference  Reference
	HasRef     bool
	DeltaT     float64
	DeltaRatio float64
	Match      bool

	// RatioAtRefT is the model ratio evaluated at the reference temperature.
	RatioAtRefT float64
}

// CompareReference matches results to refs by energy. Results without a
// reference entry are returned with HasRef false.
func (s *Solver) CompareReference(results []Result, refs []Reference) []Comparison {
	out := make([]Comparison, len(results))
	for i, r := range results {
		c := Comparison{Result: r}
		for _, ref := range refs {
			if math.Abs(ref.Energy-r.Energy) < 1e-9 {
				c.Reference = ref
				c.HasRef = true
				c.DeltaT = r.Temperature - ref.Temperature
				c.DeltaRatio = r.EntropyRatio - ref.EntropyRatio
				c.Match = math.Abs(c.DeltaT) < TemperatureTolerance && math.Abs(c.DeltaRatio) < RatioTolerance
				if ref.Temperature > 0 {
					c.RatioAtRefT = s.ratio(ref.Temperature)
				}
				break
			}
		}
		out[i] = c
	}
	return out
}

// Matches counts comparisons within tolerance.
func Matches(cs []Comparison) int {
	n := 0
	for _, c := range cs {
		if c.Match {
			n++
		}
	}
	return n
}
