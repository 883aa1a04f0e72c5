package thermo

import "math"

// Model is the Stefan-Boltzmann energy and entropy density of an ideal
// relativistic gas with effective degeneracy g, scaled by k_g.
type Model struct {
	LatticeScale float64
	Degeneracy   float64
}

func NewModel(c ConstantSet) Model {
	return Model{LatticeScale: c.LatticeScale, Degeneracy: c.Degeneracy}
}

// coefficient is k_g * pi^2/30 * g.
func (m Model) coefficient() float64 {
	return m.LatticeScale * (math.Pi * math.Pi / 30) * m.Degeneracy
}

// EnergyDensity returns epsilon(T) in GeV/fm^3 for T in MeV.
func (m Model) EnergyDensity(tMeV float64) float64 {
	t := tMeV * 1e-3
	return m.coefficient() * t * t * t * t
}

// EntropyDensity returns s(T) = 4 epsilon * 1000 / (3T) in k_B/fm^3.
// Undefined at T = 0.
func (m Model) EntropyDensity(tMeV float64) float64 {
	return 4 * m.EnergyDensity(tMeV) * 1e3 / (3 * tMeV)
}

// EnergyDensityAt is EnergyDensity with the domain checked.
func (m Model) EnergyDensityAt(tMeV float64) (float64, error) {
	if err := checkTemperature(tMeV); err != nil {
		return 0, err
	}
	return m.EnergyDensity(tMeV), nil
}

// EntropyDensityAt is EntropyDensity with the domain checked.
func (m Model) EntropyDensityAt(tMeV float64) (float64, error) {
	if err := checkTemperature(tMeV); err != nil {
		return 0, err
	}
	return m.EntropyDensity(tMeV), nil
}

// EnergyDensitySlope is d(epsilon)/dT in GeV/fm^3 per MeV.
func (m Model) EnergyDensitySlope(tMeV float64) float64 {
	t := tMeV * 1e-3
	return 4 * m.coefficient() * t * t * t * 1e-3
}

// Temperature inverts EnergyDensity in closed form. Used to cross-check the
// numeric solve; callers needing convergence reporting use the solver.
func (m Model) Temperature(epsilon float64) float64 {
	if epsilon <= 0 {
		return 0
	}
	return 1e3 * math.Pow(epsilon/m.coefficient(), 0.25)
}

func checkTemperature(tMeV float64) error {
	if math.IsNaN(tMeV) || math.IsInf(tMeV, 0) || tMeV <= 0 {
		return ErrNonPositiveTemperature
	}
	return nil
}
