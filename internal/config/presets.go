package config

import (
	"sort"

	"github.com/san-kum/qgpscan/internal/thermo"
)

// Presets are named constant sets for common collision systems.
var Presets = map[string]func() thermo.ConstantSet{
	"au_central": thermo.DefaultConstants,
	"au_legacy": func() thermo.ConstantSet {
		return thermo.DefaultConstants().WithParticipants(350)
	},
	"au_free_gas": func() thermo.ConstantSet {
		c := thermo.DefaultConstants()
		c.LatticeScale = 1.0
		return c
	},
	"cu_central": func() thermo.ConstantSet {
		c := thermo.DefaultConstants()
		c.MassNumber = 63
		c.Participants = 100
		return c
	},
}

var presetDescriptions = map[string]string{
	"au_central":  "Au+Au 0-5%, N_part = 148",
	"au_legacy":   "Au+Au with the superseded N_part = 350",
	"au_free_gas": "Au+Au with k_g = 1 (no lattice rescaling)",
	"cu_central":  "Cu+Cu central, A = 63, N_part = 100",
}

// GetPreset returns DefaultConfig with the named constants, or nil.
func GetPreset(name string) *Config {
	fn, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Constants = fn()
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func DescribePreset(name string) string {
	return presetDescriptions[name]
}
