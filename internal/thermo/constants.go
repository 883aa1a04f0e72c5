package thermo

import (
	"fmt"
	"math"
)

// Default model constants for central Au+Au collisions.
const (
	DefaultInelasticity      = 0.6
	DefaultMassNumber        = 197
	DefaultRadiusCoefficient = 1.2 // fm
	DefaultNucleonMass       = 0.938
	DefaultDegeneracy        = 63.25
	DefaultLatticeScale      = 0.24
	DefaultScaleFactor       = 360
	DefaultParticipants      = 148
	DefaultReferenceEntropy  = 9.81 // k_B
	DefaultFormationTime     = 1.0  // fm/c
	DefaultRapidityWindow    = 1.0
)

// ConstantSet holds the physical and model parameters of a calculation.
// It is a plain value: copies are independent and nothing in this module
// mutates a ConstantSet after it has been validated.
type ConstantSet struct {
	Inelasticity      float64 `yaml:"inelasticity" json:"inelasticity"`
	MassNumber        float64 `yaml:"mass_number" json:"mass_number"`
	RadiusCoefficient float64 `yaml:"radius_coefficient" json:"radius_coefficient"`
	NucleonMass       float64 `yaml:"nucleon_mass" json:"nucleon_mass"`
	Degeneracy        float64 `yaml:"degeneracy" json:"degeneracy"`
	LatticeScale      float64 `yaml:"lattice_scale" json:"lattice_scale"`
	ScaleFactor       float64 `yaml:"scale_factor" json:"scale_factor"`
	Participants      float64 `yaml:"participants" json:"participants"`
	ReferenceEntropy  float64 `yaml:"reference_entropy" json:"reference_entropy"`
	FormationTime     float64 `yaml:"formation_time" json:"formation_time"`
	RapidityWindow    float64 `yaml:"rapidity_window" json:"rapidity_window"`
}

func DefaultConstants() ConstantSet {
	return ConstantSet{
		Inelasticity:      DefaultInelasticity,
		MassNumber:        DefaultMassNumber,
		RadiusCoefficient: DefaultRadiusCoefficient,
		NucleonMass:       DefaultNucleonMass,
		Degeneracy:        DefaultDegeneracy,
		LatticeScale:      DefaultLatticeScale,
		ScaleFactor:       DefaultScaleFactor,
		Participants:      DefaultParticipants,
		ReferenceEntropy:  DefaultReferenceEntropy,
		FormationTime:     DefaultFormationTime,
		RapidityWindow:    DefaultRapidityWindow,
	}
}

// Validate reports the first field that is not a positive finite number.
func (c ConstantSet) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"inelasticity", c.Inelasticity},
		{"mass_number", c.MassNumber},
		{"radius_coefficient", c.RadiusCoefficient},
		{"nucleon_mass", c.NucleonMass},
		{"degeneracy", c.Degeneracy},
		{"lattice_scale", c.LatticeScale},
		{"scale_factor", c.ScaleFactor},
		{"participants", c.Participants},
		{"reference_entropy", c.ReferenceEntropy},
		{"formation_time", c.FormationTime},
		{"rapidity_window", c.RapidityWindow},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value <= 0 {
			return &ConstantError{Field: f.name, Value: f.value, Wrapped: ErrInvalidConstant}
		}
	}
	if c.Inelasticity > 1 {
		return &ConstantError{Field: "inelasticity", Value: c.Inelasticity, Wrapped: ErrInvalidConstant}
	}
	return nil
}

// NuclearRadius is r0 * A^(1/3) in fm.
func (c ConstantSet) NuclearRadius() float64 {
	return c.RadiusCoefficient * math.Cbrt(c.MassNumber)
}

// Volume is the initial Bjorken volume pi * R^2 * tau0 * dY in fm^3.
func (c ConstantSet) Volume() float64 {
	r := c.NuclearRadius()
	return math.Pi * r * r * c.FormationTime * c.RapidityWindow
}

// Threshold is the lowest sqrt(s_NN) with positive available energy.
func (c ConstantSet) Threshold() float64 {
	return 2 * c.NucleonMass
}

// WithParticipants returns a copy with N_part replaced.
func (c ConstantSet) WithParticipants(n float64) ConstantSet {
	c.Participants = n
	return c
}

// WithInelasticity returns a copy with K_inel replaced.
func (c ConstantSet) WithInelasticity(k float64) ConstantSet {
	c.Inelasticity = k
	return c
}

func (c ConstantSet) String() string {
	return fmt.Sprintf("N_part=%g K_inel=%g k_g=%g g=%g scale=%g dS=%g",
		c.Participants, c.Inelasticity, c.LatticeScale, c.Degeneracy, c.ScaleFactor, c.ReferenceEntropy)
}
