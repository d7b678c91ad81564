package sim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/projsim/internal/analysis"
	"github.com/san-kum/projsim/internal/dynamo"
	"github.com/san-kum/projsim/internal/physics"
	"github.com/san-kum/projsim/internal/sim"
)

func launch(basis dynamo.Basis, y0, v0, theta, k float64, n int) dynamo.Params {
	p := dynamo.DefaultParams()
	p.Y0, p.V0, p.Theta0, p.K, p.N, p.Basis = y0, v0, theta, k, n, basis
	return p
}

func mustSimulate(p dynamo.Params) *dynamo.Trajectory {
	traj, err := sim.Simulate(p)
	Expect(err).NotTo(HaveOccurred())
	return traj
}

var _ = Describe("Trajectory properties", func() {
	bases := []dynamo.Basis{dynamo.Cartesian, dynamo.Natural}

	for _, basis := range bases {
		basis := basis

		Context("in the "+basis.String()+" basis", func() {
			It("spaces samples dt apart to within rounding", func() {
				traj := mustSimulate(launch(basis, 5, 40, 35, 0.01, 1))
				for i := 1; i < traj.Len(); i++ {
					Expect(traj.At(i).T - traj.At(i-1).T).To(BeNumerically("~", 0.01, 1e-9))
				}
			})

			It("stops at the first sample below ground and keeps it", func() {
				traj := mustSimulate(launch(basis, 12, 65, 25, 0.001, 2))
				Expect(traj.Len()).To(BeNumerically(">=", 2))
				Expect(traj.Last().Y).To(BeNumerically("<", 0))
				for i := 0; i < traj.Len()-1; i++ {
					Expect(traj.At(i).Y).To(BeNumerically(">=", 0))
				}
			})

			It("keeps a vertical launch on the y axis", func() {
				traj := mustSimulate(launch(basis, 0, 80, 90, 0.002, 2))
				for i := 0; i < traj.Len(); i++ {
					Expect(traj.At(i).X).To(BeZero())
				}
			})

			It("conserves mechanical energy without drag", func() {
				p := launch(basis, 10, 150, 80, 0, 1)
				traj := mustSimulate(p)
				e0 := traj.First().Energy(p.G)
				tol := 1e-9
				if basis == dynamo.Natural {
					tol = 5e-3
				}
				for i := 0; i < traj.Len(); i++ {
					Expect(math.Abs(traj.At(i).Energy(p.G)-e0) / e0).To(BeNumerically("<", tol))
				}
			})

			It("matches the closed-form flight without drag", func() {
				p := launch(basis, 0, 150, 80, 0, 1)
				ref := physics.Ballistic{V0: p.V0, Theta0: p.Theta0, G: p.G}
				traj := mustSimulate(p)

				_, apex := analysis.Apex(traj)
				Expect(apex.Y).To(BeNumerically("~", ref.PeakHeight(), 1.0))
				Expect(apex.T).To(BeNumerically("~", ref.ApexTime(), 3*p.Dt))
				Expect(traj.Last().T).To(BeNumerically("~", ref.FlightTime(), p.Dt))

				landing, ok := analysis.Landing(traj)
				Expect(ok).To(BeTrue())
				Expect(landing.X).To(BeNumerically("~", ref.Range(), 0.005*ref.Range()))
			})

			It("loses height and flight time as drag grows", func() {
				for _, n := range []int{1, 2} {
					ks := []float64{0, 0.01, 0.05, 0.2}
					if n == 2 {
						ks = []float64{0, 0.0005, 0.002, 0.01}
					}
					prevPeak, prevTime := math.Inf(1), math.Inf(1)
					for _, k := range ks {
						traj := mustSimulate(launch(basis, 0, 100, 60, k, n))
						_, apex := analysis.Apex(traj)
						Expect(apex.Y).To(BeNumerically("<", prevPeak))
						Expect(traj.Duration()).To(BeNumerically("<", prevTime))
						prevPeak, prevTime = apex.Y, traj.Duration()
					}
				}
			})
		})
	}

	It("mirrors the ascent in the descent without drag", func() {
		p := launch(dynamo.Cartesian, 0, 150, 80, 0, 1)
		ref := physics.Ballistic{V0: p.V0, Theta0: p.Theta0, G: p.G}
		traj := mustSimulate(p)

		mirror := int(math.Round(2 * ref.ApexTime() / p.Dt))
		for i := 0; i <= mirror && mirror-i < traj.Len(); i++ {
			Expect(traj.At(i).Y).To(BeNumerically("~", traj.At(mirror-i).Y, p.V0*p.Dt))
		}
	})

	DescribeTable("agrees across coordinate bases",
		func(y0, v0, theta, k float64, n int) {
			cart := mustSimulate(launch(dynamo.Cartesian, y0, v0, theta, k, n))
			natural := mustSimulate(launch(dynamo.Natural, y0, v0, theta, k, n))

			_, apex := analysis.Apex(cart)
			scale := math.Max(apex.Y, math.Abs(cart.Last().X))
			Expect(analysis.Deviation(cart, natural)).To(BeNumerically("<", 0.01*scale))
			Expect(cart.Len()).To(BeNumerically("~", natural.Len(), 3))
		},
		Entry("steep, no drag", 0.0, 150.0, 80.0, 0.0, 1),
		Entry("linear drag", 0.0, 50.0, 45.0, 0.02, 1),
		Entry("quadratic drag", 0.0, 100.0, 60.0, 0.0005, 2),
		Entry("from a height", 20.0, 80.0, 30.0, 0.001, 2),
	)

	It("converges across bases as the step shrinks", func() {
		coarse := launch(dynamo.Cartesian, 0, 150, 80, 0, 1)
		fine := coarse
		fine.Dt = 0.001

		dev := func(p dynamo.Params) float64 {
			q := p
			q.Basis = dynamo.Natural
			return analysis.Deviation(mustSimulate(p), mustSimulate(q))
		}
		Expect(dev(fine)).To(BeNumerically("<", dev(coarse)/5))
	})

	It("reproduces the steep-launch example", func() {
		traj := mustSimulate(launch(dynamo.Cartesian, 0, 150, 80, 0, 1))

		_, apex := analysis.Apex(traj)
		Expect(apex.Y).To(BeNumerically("~", 1112.2, 0.5))
		Expect(apex.T).To(BeNumerically("~", 15.06, 0.01))
		Expect(traj.Duration()).To(BeNumerically("~", 30.12, 0.011))

		landing, ok := analysis.Landing(traj)
		Expect(ok).To(BeTrue())
		Expect(landing.X).To(BeNumerically("~", 784.4, 0.5))
		Expect(landing.T).To(BeNumerically("~", 30.117, 0.005))
	})
})
