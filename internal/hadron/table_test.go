package hadron

import (
	"sort"
	"testing"
)

func TestTableSize(t *testing.T) {
	if n := len(All()); n != 23 {
		t.Errorf("expected 23 hadrons, got %d", n)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	hs := All()
	hs[0].MeltTemperature = 0

	h, ok := Lookup("X(3872)")
	if !ok || h.MeltTemperature != 71.6 {
		t.Errorf("table mutated through All(): %+v", h)
	}
}

func TestSortedByMelt(t *testing.T) {
	hs := SortedByMelt()
	ok := sort.SliceIsSorted(hs, func(i, j int) bool {
		return hs[i].MeltTemperature < hs[j].MeltTemperature
	})
	if !ok {
		t.Error("expected ascending melting temperatures")
	}
	if hs[len(hs)-1].Name != "X(6900)" {
		t.Errorf("expected X(6900) last, got %s", hs[len(hs)-1].Name)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(All())

	if s.Count != 23 {
		t.Errorf("expected count 23, got %d", s.Count)
	}
	if s.Min != 71.6 || s.Max != 155.0 {
		t.Errorf("expected range 71.6-155.0, got %.1f-%.1f", s.Min, s.Max)
	}
	if s.MeltedBelow != 22 {
		t.Errorf("expected 22 melted below 155 MeV, got %d", s.MeltedBelow)
	}
	if s.Mean <= s.Min || s.Mean >= s.Max {
		t.Errorf("mean %.2f outside range", s.Mean)
	}

	if empty := Summarize(nil); empty.Count != 0 {
		t.Errorf("expected empty stats, got %+v", empty)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		melt float64
	}{
		{"Pc(4312)", true, 113.9},
		{"X(6900)", true, 155.0},
		{"J/psi", false, 0},
	}

	for _, tt := range tests {
		h, ok := Lookup(tt.name)
		if ok != tt.ok || h.MeltTemperature != tt.melt {
			t.Errorf("%s: expected (%v, %.1f), got (%v, %.1f)", tt.name, tt.ok, tt.melt, ok, h.MeltTemperature)
		}
	}
}

func TestMeltedAt(t *testing.T) {
	if n := len(MeltedAt(100)); n != 3 {
		t.Errorf("expected 3 states melted at 100 MeV, got %d", n)
	}
	if n := len(MeltedAt(QGPTransitionTemperature)); n != 23 {
		t.Errorf("expected all states melted at T_c, got %d", n)
	}
}
