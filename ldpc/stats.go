package ldpc

// RowStats summarizes the row weights of the permutation-derived rows of a Matrix.
type RowStats struct {
	Rows     int
	Mean     float64
	Variance float64 // sample variance (n-1)
	Min      int
	Max      int
}

// Stats returns row weight statistics over rows [Prefix, Rows).
func (m *Matrix[W]) Stats() RowStats {
	n := m.Rows - m.Prefix
	if n <= 0 {
		return RowStats{}
	}

	s := RowStats{Rows: n, Min: m.RowLen + 1, Max: -1}

	// Welford's online mean/variance.
	var mean, m2 float64
	for i := range n {
		w := m.RowWeight(m.Prefix + i)
		s.Min = min(s.Min, w)
		s.Max = max(s.Max, w)

		delta := float64(w) - mean
		mean += delta / float64(i+1)
		m2 += delta * (float64(w) - mean)
	}

	s.Mean = mean
	if n > 1 {
		s.Variance = m2 / float64(n-1)
	}
	return s
}

// Expected returns the hypergeometric mean and variance of a generated row's weight:
// RowLen draws without replacement from RowLen*rat cells of which OnesPerRow*rat
// are ones.
func Expected(cfg Config) (mean, variance float64) {
	rat := cfg.Ratio()
	if rat == 0 || cfg.RowLen <= 0 {
		return 0, 0
	}

	population := float64(cfg.RowLen) * float64(rat)
	successes := float64(cfg.OnesPerRow) * float64(rat)
	draws := float64(cfg.RowLen)

	p := successes / population
	mean = draws * p
	if population <= 1 {
		return mean, 0
	}
	variance = draws * p * (1 - p) * (population - draws) / (population - 1)
	return mean, variance
}
