// Package metrics computes the biomechanical summary statistics of a decoded
// session: body-angle descriptive statistics, gait metrics, foot placement
// metrics and landmark distance metrics.
//
// Every function reads frame sequences and never modifies them.
package metrics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptySeries is returned where Max/Min/Average over zero samples would be
// undefined. Callers treat the affected section as omitted.
var ErrEmptySeries = errors.New("metrics: empty series")

// span is max-min, or 0 for an empty slice.
func span(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Max(xs) - floats.Min(xs)
}

// mean is the arithmetic mean, or 0 for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// popStdDev is the population standard deviation sqrt(mean((x-mean)^2)),
// or 0 for an empty slice.
func popStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	_, variance := stat.PopMeanVariance(xs, nil)
	return math.Sqrt(variance)
}

// DistanceMetrics summarises one landmark-to-landmark distance series.
type DistanceMetrics struct {
	MaxDistance float64
	MinDistance float64
	AvgDistance float64
}

// SummarizeDistances returns Max, Min and Average of xs, or ErrEmptySeries.
func SummarizeDistances(xs []float64) (DistanceMetrics, error) {
	if len(xs) == 0 {
		return DistanceMetrics{}, ErrEmptySeries
	}
	return DistanceMetrics{
		MaxDistance: floats.Max(xs),
		MinDistance: floats.Min(xs),
		AvgDistance: stat.Mean(xs, nil),
	}, nil
}
