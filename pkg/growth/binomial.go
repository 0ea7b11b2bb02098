package growth

import "math"

// logBinomialTable precomputes log C(n, k) for n in [0, N] and all valid k,
// from a running sum of log(i) (log-factorials) for numerical stability at
// the group counts this system
// targets (spec §4.5: "precomputes a table of log-binomials").
type logBinomialTable struct {
	logFact []float64 // logFact[i] = log(i!)
}

func newLogBinomialTable(n int) *logBinomialTable {
	logFact := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		logFact[i] = logFact[i-1] + math.Log(float64(i))
	}
	return &logBinomialTable{logFact: logFact}
}

// logC returns log C(n, k), or math.Inf(-1) when the choice is impossible.
func (t *logBinomialTable) logC(n, k int) float64 {
	if k < 0 || k > n || n < 0 {
		return math.Inf(-1)
	}
	return t.logFact[n] - t.logFact[k] - t.logFact[n-k]
}
