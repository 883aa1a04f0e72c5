package threshold

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qgpscan/internal/thermo"
)

var _ = Describe("Sweeps", func() {
	var s *Solver

	BeforeEach(func() {
		s = mustSolver(thermo.DefaultConstants(), DefaultOptions())
	})

	It("keeps inelasticity order and grows with K", func() {
		ks := []float64{0.5, 0.6, 0.7}
		results, err := s.Sensitivity(context.Background(), 19.6, ks)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(3))

		for i, r := range results {
			Expect(r.Inelasticity).To(Equal(ks[i]))
		}
		Expect(results[0].Temperature).To(BeNumerically("<", results[1].Temperature))
		Expect(results[1].Temperature).To(BeNumerically("<", results[2].Temperature))

		direct, err := s.Calculate(19.6, 0.6)
		Expect(err).NotTo(HaveOccurred())
		Expect(results[1]).To(Equal(direct))
	})

	It("lowers the ratio as participants grow", func() {
		nparts := []float64{50, 148, 350}
		results, err := s.ParticipantScan(context.Background(), 19.6, nparts)
		Expect(err).NotTo(HaveOccurred())

		for i, r := range results {
			Expect(r.Participants).To(Equal(nparts[i]))
		}
		Expect(results[0].EntropyRatio).To(BeNumerically(">", results[1].EntropyRatio))
		Expect(results[1].EntropyRatio).To(BeNumerically(">", results[2].EntropyRatio))
		Expect(results[0].Temperature).To(BeNumerically("<", results[2].Temperature))
	})

	It("matches the sequential scan on a concurrent grid", func() {
		seq, err := s.Scan(context.Background(), sampledEnergies)
		Expect(err).NotTo(HaveOccurred())
		par, err := s.EnergyGrid(context.Background(), sampledEnergies)
		Expect(err).NotTo(HaveOccurred())
		Expect(par).To(Equal(seq))
	})

	It("fails the whole sweep on a bad point", func() {
		_, err := s.Sensitivity(context.Background(), 19.6, []float64{0.6, 0})
		Expect(err).To(MatchError(ErrInvalidInput))

		_, err = s.ParticipantScan(context.Background(), 19.6, []float64{148, -1})
		Expect(err).To(MatchError(thermo.ErrInvalidConstant))
	})

	It("stops on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Scan(ctx, sampledEnergies)
		Expect(err).To(MatchError(context.Canceled))
		_, err = s.EnergyGrid(ctx, sampledEnergies)
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("CompareReference", func() {
	It("flags the default model as not reproducing the reference temperatures", func() {
		s := mustSolver(thermo.DefaultConstants(), DefaultOptions())
		results, err := s.Scan(context.Background(), ReferenceEnergies())
		Expect(err).NotTo(HaveOccurred())

		cs := s.CompareReference(results, ReferenceTable)
		Expect(cs).To(HaveLen(len(ReferenceTable)))
		Expect(Matches(cs)).To(BeZero())
		for _, c := range cs {
			Expect(c.HasRef).To(BeTrue())
			Expect(c.RatioAtRefT).To(BeNumerically("~", c.Reference.EntropyRatio, RatioTolerance))
		}
	})

	It("matches results against their own values", func() {
		s := mustSolver(thermo.DefaultConstants(), DefaultOptions())
		results, err := s.Scan(context.Background(), []float64{19.6, 27.0})
		Expect(err).NotTo(HaveOccurred())

		refs := []Reference{{Energy: 19.6, Temperature: results[0].Temperature + 0.5, EntropyRatio: results[0].EntropyRatio}}
		cs := s.CompareReference(results, refs)
		Expect(cs[0].Match).To(BeTrue())
		Expect(cs[0].DeltaT).To(BeNumerically("~", -0.5, 1e-9))
		Expect(cs[1].HasRef).To(BeFalse())
		Expect(Matches(cs)).To(Equal(1))
	})
})
