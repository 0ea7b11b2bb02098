package growth

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/panacus-go/pkg/abacus"
	"github.com/dd0wney/panacus-go/pkg/hist"
)

// TestGrowthMonotoneNonDecreasingProperty generalizes
// TestGrowthMonotoneNonDecreasing (spec §8 invariant) across randomly
// generated coverage histograms, the way the teacher's gopter usage
// generates randomized fixtures rather than hand-picking a single example.
func TestGrowthMonotoneNonDecreasingProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("growth(m) is non-decreasing in m", prop.ForAll(
		func(coverage []uint64) bool {
			if len(coverage) < 2 {
				return true
			}
			h := &hist.Hist{CountType: abacus.CountNode, Coverage: coverage}
			curve, err := FromHistogram(h, []Threshold{Absolute(1)}, []Threshold{Relative(0)}, nil)
			if err != nil {
				return false
			}
			values := curve.Values[0]
			for m := 1; m < len(values); m++ {
				if values[m] < values[m-1] {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(6, gen.UInt64Range(0, 50)),
	))

	properties.TestingRun(t)
}

// TestGrowthFullCoverageEqualsTotalProperty generalizes
// TestGrowthFullCoverageEqualsHistogramTotal (spec §8 invariant 4) across
// random histograms: at c=1, q=0, growth(G) always equals the histogram's
// total covered weight.
func TestGrowthFullCoverageEqualsTotalProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("growth(G) at c=1,q=0 equals Hist.Total()", prop.ForAll(
		func(coverage []uint64) bool {
			if len(coverage) < 2 {
				return true
			}
			coverage[0] = 0 // k=0 bucket never contributes to growth(G)
			h := &hist.Hist{CountType: abacus.CountNode, Coverage: coverage}
			curve, err := FromHistogram(h, []Threshold{Absolute(1)}, []Threshold{Relative(0)}, nil)
			if err != nil {
				return false
			}
			got := curve.Values[0][curve.G-1]
			return got == float64(h.Total())
		},
		gen.SliceOfN(6, gen.UInt64Range(0, 50)),
	))

	properties.TestingRun(t)
}
