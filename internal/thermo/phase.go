package thermo

import "fmt"

// Phase is the state of matter implied by the entropy ratio.
type Phase int

const (
	Hadronic Phase = iota
	QGP
)

// CriticalRatio is the entropy-per-participant ratio above which matter is QGP.
const CriticalRatio = 1.0

// PhaseOf returns QGP iff ratio > CriticalRatio.
func PhaseOf(ratio float64) Phase {
	if ratio > CriticalRatio {
		return QGP
	}
	return Hadronic
}

func (p Phase) String() string {
	switch p {
	case QGP:
		return "QGP"
	default:
		return "Hadronic"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "QGP":
		*p = QGP
	case "Hadronic":
		*p = Hadronic
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPhase, text)
	}
	return nil
}
