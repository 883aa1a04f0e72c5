package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/qgpscan/internal/thermo"
	"github.com/san-kum/qgpscan/internal/threshold"
)

const (
	DefaultDataDir    = ".qgpscan"
	DefaultResultsCSV = "validation_exact.csv"
	DefaultMeltingCSV = "table3_melting_temps_correct.csv"
	DefaultLogLevel   = "info"
)

// DefaultEnergies are the beam-energy-scan points in GeV.
var DefaultEnergies = []float64{7.7, 11.5, 14.5, 19.6, 27.0, 39.0, 62.4, 200.0}

type Config struct {
	Constants   thermo.ConstantSet    `yaml:"constants"`
	Energies    []float64             `yaml:"energies"`
	Solver      SolverConfig          `yaml:"solver"`
	Transition  BracketConfig         `yaml:"transition"`
	Sensitivity SensitivityConfig     `yaml:"sensitivity"`
	SystemSize  SystemSizeConfig      `yaml:"system_size"`
	Reference   []threshold.Reference `yaml:"reference"`
	Output      OutputConfig          `yaml:"output"`
	LogLevel    string                `yaml:"log_level"`
}

type SolverConfig struct {
	InitialGuess  float64 `yaml:"initial_guess"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

type BracketConfig struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

type SensitivityConfig struct {
	Energy         float64   `yaml:"energy"`
	Inelasticities []float64 `yaml:"inelasticities"`
}

type SystemSizeConfig struct {
	Energy       float64   `yaml:"energy"`
	Participants []float64 `yaml:"participants"`
}

type OutputConfig struct {
	Dir        string `yaml:"dir"`
	DataDir    string `yaml:"data_dir"`
	ResultsCSV string `yaml:"results_csv"`
	MeltingCSV string `yaml:"melting_csv"`
}

func DefaultConfig() *Config {
	return &Config{
		Constants: thermo.DefaultConstants(),
		Energies:  append([]float64(nil), DefaultEnergies...),
		Solver: SolverConfig{
			InitialGuess:  threshold.DefaultInitialGuess,
			Tolerance:     threshold.DefaultTolerance,
			MaxIterations: threshold.DefaultMaxIterations,
		},
		Transition: BracketConfig{
			Low:  threshold.DefaultBracketLow,
			High: threshold.DefaultBracketHigh,
		},
		Sensitivity: SensitivityConfig{
			Energy:         19.6,
			Inelasticities: []float64{0.5, 0.6, 0.7},
		},
		SystemSize: SystemSizeConfig{
			Energy:       200.0,
			Participants: []float64{2, 8, 20, 50, 100, 148, 250, 350},
		},
		Reference: append([]threshold.Reference(nil), threshold.ReferenceTable...),
		Output: OutputConfig{
			Dir:        ".",
			DataDir:    DefaultDataDir,
			ResultsCSV: DefaultResultsCSV,
			MeltingCSV: DefaultMeltingCSV,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file over DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the constants and every energy list against the threshold.
func (c *Config) Validate() error {
	if err := c.Constants.Validate(); err != nil {
		return err
	}
	min := c.Constants.Threshold()
	for _, e := range c.Energies {
		if !(e > min) || math.IsInf(e, 0) {
			return fmt.Errorf("energies: %g GeV is not above 2 m_N = %g GeV", e, min)
		}
	}
	if !(c.Transition.Low < c.Transition.High) || c.Transition.Low <= min {
		return fmt.Errorf("transition: invalid bracket [%g, %g]", c.Transition.Low, c.Transition.High)
	}
	for _, k := range c.Sensitivity.Inelasticities {
		if !(k > 0 && k <= 1) {
			return fmt.Errorf("sensitivity: inelasticity %g outside (0, 1]", k)
		}
	}
	for _, n := range c.SystemSize.Participants {
		if !(n > 0) {
			return fmt.Errorf("system_size: participants %g must be positive", n)
		}
	}
	return nil
}

// SolverOptions converts the solver section for threshold.New.
func (c *Config) SolverOptions() threshold.Options {
	return threshold.Options{
		InitialGuess:  c.Solver.InitialGuess,
		Tolerance:     c.Solver.Tolerance,
		MaxIterations: c.Solver.MaxIterations,
	}
}
