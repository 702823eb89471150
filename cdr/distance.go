package cdr

import (
	"fmt"
	"math"

	"cdrimg/okcolor"
)

// SentinelDistance is reported when either operand is NoPixel. It exceeds
// every valid threshold, so growth always stops at the image boundary.
const SentinelDistance = 999

// Metric selects how the closeness of two colors is measured.
type Metric int

const (
	// MetricRGB is the Euclidean distance between RGB triples.
	MetricRGB Metric = iota
	// MetricOklab is the Oklab distance scaled by 255, so thresholds keep
	// roughly the same magnitude as with MetricRGB.
	MetricOklab
)

var metricNames = map[Metric]string{
	MetricRGB:   "rgb",
	MetricOklab: "oklab",
}

func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric maps a metric name to its Metric.
func ParseMetric(name string) (Metric, error) {
	for m, n := range metricNames {
		if n == name {
			return m, nil
		}
	}
	return MetricRGB, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
}

// Distance measures a and b with the Euclidean RGB metric.
func Distance(a, b Sample) float64 {
	return MetricRGB.Distance(a, b)
}

// Distance measures a and b with m.
func (m Metric) Distance(a, b Sample) float64 {
	if !a.Valid || !b.Valid {
		return SentinelDistance
	}

	switch m {
	case MetricOklab:
		la := okcolor.FromRGB(a.Color.R, a.Color.G, a.Color.B)
		lb := okcolor.FromRGB(b.Color.R, b.Color.G, b.Color.B)
		return la.Distance(lb) * 255
	default:
		dr := float64(a.Color.R) - float64(b.Color.R)
		dg := float64(a.Color.G) - float64(b.Color.G)
		db := float64(a.Color.B) - float64(b.Color.B)
		return math.Sqrt(dr*dr + dg*dg + db*db)
	}
}
