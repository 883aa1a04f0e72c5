package threshold

import (
	"errors"
	"fmt"

	"github.com/san-kum/qgpscan/internal/rootfind"
	"github.com/san-kum/qgpscan/internal/thermo"
)

// Default search bracket for the transition energy, GeV.
const (
	DefaultBracketLow  = 14.5
	DefaultBracketHigh = 19.6
)

// TransitionStatus distinguishes a located root from an empty bracket. The
// zero value is TransitionUnknown, returned alongside errors.
type TransitionStatus int

const (
	TransitionUnknown TransitionStatus = iota
	TransitionFound
	TransitionNotInBracket
)

func (s TransitionStatus) String() string {
	switch s {
	case TransitionFound:
		return "found"
	case TransitionNotInBracket:
		return "no transition in bracket"
	default:
		return "unknown"
	}
}

// Transition is the outcome of a bracketed search for S/N = 1.
type Transition struct {
	Status     TransitionStatus
	Energy     float64 // valid only when Status == TransitionFound
	Low, High  float64
	RatioLow   float64
	RatioHigh  float64
	Iterations int
}

func (t Transition) Found() bool { return t.Status == TransitionFound }

func (t Transition) String() string {
	switch t.Status {
	case TransitionFound:
		return fmt.Sprintf("transition at sqrt_s_c = %.3f GeV", t.Energy)
	case TransitionUnknown:
		return "transition unknown"
	}
	return fmt.Sprintf("no transition in [%.1f, %.1f] GeV (S/N %.3f .. %.3f)",
		t.Low, t.High, t.RatioLow, t.RatioHigh)
}

// FindTransition locates the energy in [low, high] where the entropy ratio
// equals thermo.CriticalRatio, at the solver's inelasticity. An empty bracket
// is a result, not an error; errors are reserved for invalid input and
// solver failure.
func (s *Solver) FindTransition(low, high float64) (Transition, error) {
	k := s.constants.Inelasticity

	lo, err := s.Calculate(low, k)
	if err != nil {
		return Transition{}, err
	}
	hi, err := s.Calculate(high, k)
	if err != nil {
		return Transition{}, err
	}

	out := Transition{
		Status:    TransitionNotInBracket,
		Low:       low,
		High:      high,
		RatioLow:  lo.EntropyRatio,
		RatioHigh: hi.EntropyRatio,
	}

	var solveErr error
	objective := func(e float64) float64 {
		r, err := s.Calculate(e, k)
		if err != nil {
			if solveErr == nil {
				solveErr = err
			}
			return 0
		}
		return r.EntropyRatio - thermo.CriticalRatio
	}

	root, err := rootfind.Brent(objective, low, high, rootfind.Options{Tolerance: s.opts.Tolerance})
	if solveErr != nil {
		return Transition{}, fmt.Errorf("find transition: %w", solveErr)
	}
	if errors.Is(err, rootfind.ErrNoRootInBracket) {
		s.logger.Info("no transition in bracket",
			"low", low, "high", high,
			"ratio_low", lo.EntropyRatio, "ratio_high", hi.EntropyRatio)
		return out, nil
	}
	if err != nil {
		return Transition{}, fmt.Errorf("find transition: %w", err)
	}

	out.Status = TransitionFound
	out.Energy = root.X
	out.Iterations = root.Iterations
	return out, nil
}

// FindDefaultTransition searches the default bracket.
func (s *Solver) FindDefaultTransition() (Transition, error) {
	return s.FindTransition(DefaultBracketLow, DefaultBracketHigh)
}

// Crossing is an adjacent pair of scanned energies between which S/N crosses one.
type Crossing struct {
	Below, Above float64
}

// Crossings returns every upward crossing of the critical ratio between
// consecutive results, in scan order.
func Crossings(results []Result) []Crossing {
	var out []Crossing
	for i := 0; i+1 < len(results); i++ {
		if results[i].EntropyRatio < thermo.CriticalRatio && results[i+1].EntropyRatio > thermo.CriticalRatio {
			out = append(out, Crossing{Below: results[i].Energy, Above: results[i+1].Energy})
		}
	}
	return out
}
