package threshold

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qgpscan/internal/rootfind"
	"github.com/san-kum/qgpscan/internal/thermo"
)

var sampledEnergies = []float64{7.7, 11.5, 14.5, 19.6, 27.0, 39.0, 62.4, 200.0}

func mustSolver(c thermo.ConstantSet, opts Options) *Solver {
	s, err := New(c, opts)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("Solver.Calculate", func() {
	var s *Solver

	BeforeEach(func() {
		s = mustSolver(thermo.DefaultConstants(), DefaultOptions())
	})

	It("reproduces the target energy density from the solved temperature", func() {
		for _, e := range sampledEnergies {
			r, err := s.Calculate(e, 0.6)
			Expect(err).NotTo(HaveOccurred())

			eps, err := s.TargetEnergyDensity(e, 0.6)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.EnergyDensity).To(Equal(eps))
			Expect(s.Model().EnergyDensity(r.Temperature)).To(BeNumerically("~", eps, 1e-9*eps))
		}
	})

	It("agrees with the closed-form inversion", func() {
		r, err := s.Calculate(19.6, 0.6)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Temperature).To(BeNumerically("~", s.Model().Temperature(r.EnergyDensity), 1e-6))
	})

	It("evaluates the default constants at 19.6 GeV", func() {
		r, err := s.Calculate(19.6, 0.6)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Temperature).To(BeNumerically("~", 1007.128, 0.01))
		Expect(r.EntropyRatio).To(BeNumerically("~", 258.328, 0.01))
		Expect(r.Phase).To(Equal(thermo.QGP))
		Expect(r.Iterations).To(BeNumerically(">", 0))
	})

	It("is monotone in collision energy", func() {
		results, err := s.Scan(context.Background(), sampledEnergies)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(len(sampledEnergies)))

		for i := 1; i < len(results); i++ {
			Expect(results[i].Temperature).To(BeNumerically(">=", results[i-1].Temperature))
			Expect(results[i].EntropyRatio).To(BeNumerically(">=", results[i-1].EntropyRatio))
		}
	})

	It("sets the phase from the entropy ratio", func() {
		for _, e := range sampledEnergies {
			r, err := s.CalculateDefault(e)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Phase == thermo.QGP).To(Equal(r.EntropyRatio > 1.0))
		}
	})

	DescribeTable("rejects invalid input",
		func(sqrtS, k float64, want error) {
			_, err := s.Calculate(sqrtS, k)
			Expect(err).To(MatchError(want))

			var ie *InputError
			Expect(errors.As(err, &ie)).To(BeTrue())
		},
		Entry("at 2 m_N", 1.876, 0.6, ErrBelowThreshold),
		Entry("below 2 m_N", 1.0, 0.6, ErrBelowThreshold),
		Entry("negative energy", -5.0, 0.6, ErrBelowThreshold),
		Entry("nan energy", math.NaN(), 0.6, ErrInvalidInput),
		Entry("infinite energy", math.Inf(1), 0.6, ErrInvalidInput),
		Entry("zero inelasticity", 19.6, 0.0, ErrInvalidInput),
		Entry("inelasticity above one", 19.6, 1.2, ErrInvalidInput),
		Entry("nan inelasticity", 19.6, math.NaN(), ErrInvalidInput),
	)

	It("surfaces non-convergence instead of returning an iterate", func() {
		tight := mustSolver(thermo.DefaultConstants(), Options{MaxIterations: 2})

		r, err := tight.Calculate(19.6, 0.6)
		Expect(err).To(MatchError(rootfind.ErrNoConvergence))
		Expect(r).To(Equal(Result{}))

		var se *rootfind.SolveError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Iterations).To(Equal(2))
	})

	It("rejects an invalid constant set", func() {
		c := thermo.DefaultConstants()
		c.Participants = 0
		_, err := New(c, DefaultOptions())
		Expect(err).To(MatchError(thermo.ErrInvalidConstant))
	})
})

var _ = Describe("EntropyRatioAt", func() {
	It("reproduces the reference ratios from the reference temperatures", func() {
		s := mustSolver(thermo.DefaultConstants(), DefaultOptions())
		for _, ref := range ReferenceTable {
			ratio, err := s.EntropyRatioAt(ref.Temperature)
			Expect(err).NotTo(HaveOccurred())
			Expect(ratio).To(BeNumerically("~", ref.EntropyRatio, RatioTolerance))
		}
	})

	It("rejects a zero temperature", func() {
		s := mustSolver(thermo.DefaultConstants(), DefaultOptions())
		_, err := s.EntropyRatioAt(0)
		Expect(err).To(MatchError(thermo.ErrNonPositiveTemperature))
	})
})
