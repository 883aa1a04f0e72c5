package thermo

import (
	"errors"
	"math"
	"testing"
)

func TestEntropyIdentity(t *testing.T) {
	m := NewModel(DefaultConstants())

	for _, temp := range []float64{1, 50, 150, 159.2, 300, 1007, 5000} {
		want := 4 * m.EnergyDensity(temp) * 1000 / (3 * temp)
		got := m.EntropyDensity(temp)
		if got != want {
			t.Errorf("T=%.1f: entropy density %g, want %g", temp, got, want)
		}
	}
}

func TestEnergyDensityKnownValue(t *testing.T) {
	m := NewModel(DefaultConstants())

	// 0.24 * pi^2/30 * 63.25 * 0.15^4
	want := 0.24 * math.Pi * math.Pi / 30 * 63.25 * 0.15 * 0.15 * 0.15 * 0.15
	got := m.EnergyDensity(150)
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("expected %g, got %g", want, got)
	}
}

func TestTemperatureInvertsEnergyDensity(t *testing.T) {
	m := NewModel(DefaultConstants())

	for _, temp := range []float64{10, 155, 1007.13, 2500} {
		back := m.Temperature(m.EnergyDensity(temp))
		if math.Abs(back-temp) > 1e-9*temp {
			t.Errorf("T=%.2f: round trip gave %.12f", temp, back)
		}
	}

	if m.Temperature(0) != 0 || m.Temperature(-1) != 0 {
		t.Error("non-positive energy density should map to zero temperature")
	}
}

func TestEnergyDensitySlope(t *testing.T) {
	m := NewModel(DefaultConstants())
	h := 1e-3
	for _, temp := range []float64{100, 160, 900} {
		numeric := (m.EnergyDensity(temp+h) - m.EnergyDensity(temp-h)) / (2 * h)
		if math.Abs(numeric-m.EnergyDensitySlope(temp)) > 1e-9 {
			t.Errorf("T=%.0f: slope %g, numeric %g", temp, m.EnergyDensitySlope(temp), numeric)
		}
	}
}

func TestCheckedDensitiesRejectBadTemperature(t *testing.T) {
	m := NewModel(DefaultConstants())

	for _, temp := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		if _, err := m.EntropyDensityAt(temp); !errors.Is(err, ErrNonPositiveTemperature) {
			t.Errorf("T=%v: expected ErrNonPositiveTemperature, got %v", temp, err)
		}
		if _, err := m.EnergyDensityAt(temp); !errors.Is(err, ErrNonPositiveTemperature) {
			t.Errorf("T=%v: expected ErrNonPositiveTemperature, got %v", temp, err)
		}
	}

	if _, err := m.EntropyDensityAt(150); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPhaseOf(t *testing.T) {
	tests := []struct {
		ratio float64
		want  Phase
	}{
		{0.5, Hadronic},
		{1.0, Hadronic},
		{1.0000001, QGP},
		{258.3, QGP},
	}

	for _, tt := range tests {
		if got := PhaseOf(tt.ratio); got != tt.want {
			t.Errorf("ratio %g: expected %s, got %s", tt.ratio, tt.want, got)
		}
	}
}

func TestPhaseText(t *testing.T) {
	var p Phase
	if err := p.UnmarshalText([]byte("QGP")); err != nil || p != QGP {
		t.Errorf("expected QGP, got %s (%v)", p, err)
	}
	text, _ := Hadronic.MarshalText()
	if string(text) != "Hadronic" {
		t.Errorf("expected Hadronic, got %s", text)
	}
	if err := p.UnmarshalText(text); err != nil || p != Hadronic {
		t.Errorf("expected Hadronic, got %s (%v)", p, err)
	}

	for _, in := range []string{"garbage", "", "qgp"} {
		p = QGP
		err := p.UnmarshalText([]byte(in))
		if !errors.Is(err, ErrUnknownPhase) {
			t.Errorf("UnmarshalText(%q) error = %v, want ErrUnknownPhase", in, err)
		}
		if p != QGP {
			t.Errorf("UnmarshalText(%q) modified phase to %s", in, p)
		}
	}
}
