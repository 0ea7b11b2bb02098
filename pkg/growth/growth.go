package growth

import (
	"math"

	"github.com/dd0wney/panacus-go/pkg/hist"
	"github.com/dd0wney/panacus-go/pkg/parallel"
)

// Curve holds one growth evaluation per requested (coverage, quorum) pair.
// Values[p][m-1] is the floored growth count at prefix size m for pair p.
type Curve struct {
	Coverage []Threshold
	Quorum   []Threshold
	G        int
	Values   [][]float64
}

// FromHistogram evaluates growth(m) for m=1..G for every (coverage[i],
// quorum[i]) pair against h (spec §4.5). Pairs are independent and are
// evaluated concurrently (spec §5 point 3).
func FromHistogram(h *hist.Hist, coverage, quorum []Threshold, pool *parallel.WorkerPool) (*Curve, error) {
	if pool == nil {
		pool = parallel.NewWorkerPool(1)
		defer pool.Close()
	}
	g := len(h.Coverage) - 1
	table := newLogBinomialTable(g)

	type pair struct{ c, q Threshold }
	pairs := make([]pair, len(coverage))
	for i := range coverage {
		pairs[i] = pair{coverage[i], quorum[i]}
	}

	values, err := parallel.MapOrdered(pool, pairs, func(_ int, p pair) ([]float64, error) {
		return evaluatePair(h.Coverage, g, table, p.c, p.q), nil
	})
	if err != nil {
		return nil, err
	}

	return &Curve{Coverage: coverage, Quorum: quorum, G: g, Values: values}, nil
}

func evaluatePair(coverage []uint64, g int, table *logBinomialTable, c, q Threshold) []float64 {
	out := make([]float64, g)
	logCGm := make([]float64, g+1)
	for m := 1; m <= g; m++ {
		logCGm[m] = table.logC(g, m)
	}
	for m := 1; m <= g; m++ {
		t := max(c.Resolve(m), q.Resolve(m))
		var sum float64
		for k := 1; k <= g; k++ {
			if coverage[k] == 0 {
				continue
			}
			sum += float64(coverage[k]) * probabilityAtLeast(table, k, m, t, g, logCGm[m])
		}
		out[m-1] = math.Floor(sum)
	}
	return out
}

// probabilityAtLeast computes P(k, m, t) from spec §4.5: the fraction of
// size-m subsets of G groups in which an item with global coverage k has
// observed coverage at least t.
func probabilityAtLeast(table *logBinomialTable, k, m, t, g int, logCGm float64) float64 {
	if math.IsInf(logCGm, -1) {
		return 0
	}
	upper := k
	if m < upper {
		upper = m
	}
	if t > upper {
		return 0
	}
	var sum float64
	for j := t; j <= upper; j++ {
		logTerm := table.logC(k, j) + table.logC(g-k, m-j) - logCGm
		if math.IsInf(logTerm, -1) {
			continue
		}
		sum += math.Exp(logTerm)
	}
	return sum
}
