package distance

import "fmt"

// Metric names a set comparison.
type Metric int

const (
	MetricJaccard Metric = iota
	MetricDice
	MetricThreeW
	MetricSokalSneath
	MetricCosine
	MetricOchiaiI
	MetricSorgenFrei
	MetricMountFord
	MetricMcConnaughey
	MetricOtsuka
	MetricKulczynskiII
	MetricDriverKroeber
	MetricJohnson
	MetricSimpson
	MetricBraunBauquet
	MetricHamming
	MetricEuclid
	MetricLanceWilliams
	MetricHellinger
	MetricChord
	MetricSoftJaccard
)

var metricNames = [...]string{
	MetricJaccard:       "Jaccard",
	MetricDice:          "Dice",
	MetricThreeW:        "ThreeW",
	MetricSokalSneath:   "SokalSneath",
	MetricCosine:        "Cosine",
	MetricOchiaiI:       "OchiaiI",
	MetricSorgenFrei:    "SorgenFrei",
	MetricMountFord:     "MountFord",
	MetricMcConnaughey:  "McConnaughey",
	MetricOtsuka:        "Otsuka",
	MetricKulczynskiII:  "KulczynskiII",
	MetricDriverKroeber: "DriverKroeber",
	MetricJohnson:       "Johnson",
	MetricSimpson:       "Simpson",
	MetricBraunBauquet:  "BraunBauquet",
	MetricHamming:       "Hamming",
	MetricEuclid:        "Euclid",
	MetricLanceWilliams: "LanceWilliams",
	MetricHellinger:     "Hellinger",
	MetricChord:         "Chord",
	MetricSoftJaccard:   "SoftJaccard",
}

func (m Metric) String() string {
	if m >= 0 && int(m) < len(metricNames) {
		return metricNames[m]
	}
	return fmt.Sprintf("Unknown(%d)", m)
}

// Metrics returns every known metric in declaration order.
func Metrics() []Metric {
	out := make([]Metric, len(metricNames))
	for i := range out {
		out[i] = Metric(i)
	}
	return out
}

// ParseMetric looks a metric up by its String form.
func ParseMetric(name string) (Metric, error) {
	for i, n := range metricNames {
		if n == name {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("unknown metric: %q", name)
}

// IsDistance reports whether smaller values mean closer sets.
func (m Metric) IsDistance() bool {
	return m >= MetricHamming && m <= MetricChord
}

// Provider returns the scoring function for m. Similarity metrics return the
// similarity; use Complement for the matching distance.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricJaccard:
		return JaccardSimilarity, nil
	case MetricDice:
		return DiceSimilarity, nil
	case MetricThreeW:
		return ThreeWSimilarity, nil
	case MetricSokalSneath:
		return SokalSneathSimilarity, nil
	case MetricCosine:
		return CosineSimilarity, nil
	case MetricOchiaiI:
		return OchiaiISimilarity, nil
	case MetricSorgenFrei:
		return SorgenFreiSimilarity, nil
	case MetricMountFord:
		return MountFordSimilarity, nil
	case MetricMcConnaughey:
		return McConnaugheySimilarity, nil
	case MetricOtsuka:
		return OtsukaSimilarity, nil
	case MetricKulczynskiII:
		return KulczynskiIISimilarity, nil
	case MetricDriverKroeber:
		return DriverKroeberSimilarity, nil
	case MetricJohnson:
		return JohnsonSimilarity, nil
	case MetricSimpson:
		return SimpsonSimilarity, nil
	case MetricBraunBauquet:
		return BraunBauquetSimilarity, nil
	case MetricHamming:
		return HammingDistance, nil
	case MetricEuclid:
		return EuclidDistance, nil
	case MetricLanceWilliams:
		return LanceWilliamsDistance, nil
	case MetricHellinger:
		return HellingerDistance, nil
	case MetricChord:
		return ChordDistance, nil
	case MetricSoftJaccard:
		return SoftJaccardSimilarity(DefaultSoftJaccardSmoothing), nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// Complement returns 1 - f.
func Complement(f Func) Func {
	return func(a, b, c uint64) float64 {
		return 1 - f(a, b, c)
	}
}
