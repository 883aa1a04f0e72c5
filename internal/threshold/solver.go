// Package threshold maps collision energies to Stefan-Boltzmann temperatures
// and entropy-per-participant ratios, and locates the energy where that ratio
// crosses one.
package threshold

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/qgpscan/internal/rootfind"
	"github.com/san-kum/qgpscan/internal/thermo"
)

const (
	DefaultInitialGuess  = 150.0 // MeV
	DefaultTolerance     = 1e-10
	DefaultMaxIterations = 100
)

type Options struct {
	InitialGuess  float64
	Tolerance     float64
	MaxIterations int
	Logger        *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		InitialGuess:  DefaultInitialGuess,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Result is one evaluated collision energy.
type Result struct {
	Energy        float64      `json:"sqrt_s"`
	Inelasticity  float64      `json:"k_inel"`
	Participants  float64      `json:"n_part"`
	EnergyDensity float64      `json:"energy_density"`
	Temperature   float64      `json:"temperature"`
	EntropyRatio  float64      `json:"entropy_ratio"`
	Phase         thermo.Phase `json:"phase"`
	Iterations    int          `json:"iterations"`
}

// Solver evaluates the threshold model for one ConstantSet.
type Solver struct {
	constants thermo.ConstantSet
	model     thermo.Model
	volume    float64
	opts      Options
	logger    *slog.Logger
}

func New(c thermo.ConstantSet, opts Options) (*Solver, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	def := DefaultOptions()
	if opts.InitialGuess <= 0 || math.IsNaN(opts.InitialGuess) || math.IsInf(opts.InitialGuess, 0) {
		opts.InitialGuess = def.InitialGuess
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = def.Tolerance
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = def.MaxIterations
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Solver{
		constants: c,
		model:     thermo.NewModel(c),
		volume:    c.Volume(),
		opts:      opts,
		logger:    logger,
	}, nil
}

func (s *Solver) Constants() thermo.ConstantSet { return s.constants }
func (s *Solver) Model() thermo.Model           { return s.model }
func (s *Solver) Volume() float64               { return s.volume }

// TargetEnergyDensity is the initial energy density in GeV/fm^3 deposited
// by N_part/2 pairs, each contributing (sqrt_s - 2 m_N) * K.
func (s *Solver) TargetEnergyDensity(sqrtS, kInel float64) (float64, error) {
	if err := s.checkInput(sqrtS, kInel); err != nil {
		return 0, err
	}
	pair := (sqrtS - s.constants.Threshold()) * kInel
	total := pair * s.constants.Participants / 2
	return total / s.volume, nil
}

// Calculate solves for the temperature at sqrtS and derives the entropy ratio.
func (s *Solver) Calculate(sqrtS, kInel float64) (Result, error) {
	eps, err := s.TargetEnergyDensity(sqrtS, kInel)
	if err != nil {
		return Result{}, err
	}

	f := func(t float64) float64 { return s.model.EnergyDensity(t) - eps }
	root, err := rootfind.Newton(f, s.opts.InitialGuess, rootfind.Options{
		Tolerance:     s.opts.Tolerance,
		MaxIterations: s.opts.MaxIterations,
		Derivative:    s.model.EnergyDensitySlope,
		Positive:      true,
	})
	if err != nil {
		return Result{}, fmt.Errorf("solve temperature at sqrt_s=%g: %w", sqrtS, err)
	}

	ratio := s.ratio(root.X)

	s.logger.Debug("solved temperature",
		"sqrt_s", sqrtS,
		"k_inel", kInel,
		"epsilon", eps,
		"T", root.X,
		"iterations", root.Iterations,
	)

	return Result{
		Energy:        sqrtS,
		Inelasticity:  kInel,
		Participants:  s.constants.Participants,
		EnergyDensity: eps,
		Temperature:   root.X,
		EntropyRatio:  ratio,
		Phase:         thermo.PhaseOf(ratio),
		Iterations:    root.Iterations,
	}, nil
}

// EntropyRatioAt is the entropy-per-participant ratio at a given temperature,
// skipping the energy-density solve.
func (s *Solver) EntropyRatioAt(tMeV float64) (float64, error) {
	if _, err := s.model.EntropyDensityAt(tMeV); err != nil {
		return 0, err
	}
	return s.ratio(tMeV), nil
}

// ratio is S_tot / (N_part * dS) with S_tot = s(T) * V * scale.
func (s *Solver) ratio(tMeV float64) float64 {
	entropy := s.model.EntropyDensity(tMeV) * s.volume * s.constants.ScaleFactor
	return entropy / (s.constants.Participants * s.constants.ReferenceEntropy)
}

// CalculateDefault uses the inelasticity of the solver's ConstantSet.
func (s *Solver) CalculateDefault(sqrtS float64) (Result, error) {
	return s.Calculate(sqrtS, s.constants.Inelasticity)
}

func (s *Solver) checkInput(sqrtS, kInel float64) error {
	if math.IsNaN(sqrtS) || math.IsInf(sqrtS, 0) {
		return &InputError{Field: "sqrt_s", Value: sqrtS, Wrapped: ErrInvalidInput}
	}
	if math.IsNaN(kInel) || kInel <= 0 || kInel > 1 {
		return &InputError{Field: "k_inel", Value: kInel, Wrapped: ErrInvalidInput}
	}
	if sqrtS <= s.constants.Threshold() {
		return &InputError{Field: "sqrt_s", Value: sqrtS, Wrapped: ErrBelowThreshold}
	}
	return nil
}
