package threshold

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qgpscan/internal/thermo"
)

// calibrated scales the reference entropy so that S/N = 1 at energy.
func calibrated(energy float64) *Solver {
	base := mustSolver(thermo.DefaultConstants(), DefaultOptions())
	r, err := base.CalculateDefault(energy)
	Expect(err).NotTo(HaveOccurred())

	c := thermo.DefaultConstants()
	c.ReferenceEntropy *= r.EntropyRatio
	return mustSolver(c, DefaultOptions())
}

var _ = Describe("FindTransition", func() {
	It("reports an empty bracket for the default constants", func() {
		s := mustSolver(thermo.DefaultConstants(), DefaultOptions())

		tr, err := s.FindDefaultTransition()
		Expect(err).NotTo(HaveOccurred())
		Expect(tr.Found()).To(BeFalse())
		Expect(tr.Status).To(Equal(TransitionNotInBracket))
		Expect(tr.Energy).To(BeZero())
		Expect(tr.RatioLow).To(BeNumerically(">", 1))
		Expect(tr.RatioHigh).To(BeNumerically(">", tr.RatioLow))
		Expect(tr.String()).To(ContainSubstring("no transition"))
	})

	It("locates a crossing strictly inside the bracket", func() {
		s := calibrated(17.0)

		tr, err := s.FindTransition(DefaultBracketLow, DefaultBracketHigh)
		Expect(err).NotTo(HaveOccurred())
		Expect(tr.Found()).To(BeTrue())
		Expect(tr.Energy).To(BeNumerically(">", DefaultBracketLow))
		Expect(tr.Energy).To(BeNumerically("<", DefaultBracketHigh))
		Expect(tr.Energy).To(BeNumerically("~", 17.0, 1e-6))
		Expect(tr.RatioLow).To(BeNumerically("<", 1))
		Expect(tr.RatioHigh).To(BeNumerically(">", 1))

		r, err := s.CalculateDefault(tr.Energy)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.EntropyRatio).To(BeNumerically("~", 1.0, 1e-6))
	})

	It("propagates invalid bracket endpoints", func() {
		s := mustSolver(thermo.DefaultConstants(), DefaultOptions())
		tr, err := s.FindTransition(1.0, 19.6)
		Expect(err).To(MatchError(ErrBelowThreshold))
		Expect(tr.Found()).To(BeFalse())
		Expect(tr.Status).To(Equal(TransitionUnknown))
		Expect(tr.String()).To(Equal("transition unknown"))
	})

	It("treats the zero value as unknown", func() {
		var tr Transition
		Expect(tr.Found()).To(BeFalse())
		Expect(tr.Status.String()).To(Equal("unknown"))
	})
})

var _ = Describe("Crossings", func() {
	It("returns adjacent intervals where S/N crosses one", func() {
		results := []Result{
			{Energy: 14.5, EntropyRatio: 0.971},
			{Energy: 19.6, EntropyRatio: 1.021},
			{Energy: 27.0, EntropyRatio: 1.097},
		}
		Expect(Crossings(results)).To(Equal([]Crossing{{Below: 14.5, Above: 19.6}}))
	})

	It("returns nothing when every ratio is above one", func() {
		Expect(Crossings([]Result{{EntropyRatio: 2}, {EntropyRatio: 3}})).To(BeEmpty())
	})
})
