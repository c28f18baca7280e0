package report

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin is one equal-width histogram bucket [Lower, Upper); the last bin is closed
type Bin struct {
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

// Histogram buckets values into bins equal-width bins spanning [min, max]
func Histogram(values []float64, bins int) ([]Bin, error) {
	if bins <= 0 || bins > MaxBins {
		return nil, fmt.Errorf("bins must be in [1, %d], got %d", MaxBins, bins)
	}
	if len(values) == 0 {
		return nil, ErrNoRecords
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]

	// every value identical
	if lo == hi {
		return []Bin{{Lower: lo, Upper: hi, Count: len(values), Frequency: 1}}, nil
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram bins are half-open, so the top edge sits just above the maximum
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	n := float64(len(values))
	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{
			Lower:     dividers[i],
			Upper:     dividers[i+1],
			Count:     int(counts[i]),
			Frequency: counts[i] / n,
		}
	}
	out[bins-1].Upper = hi
	return out, nil
}

// CDFPoint is the fraction of values at or below Value
type CDFPoint struct {
	Value    float64 `json:"value"`
	Fraction float64 `json:"fraction"`
}

// cdfAt evaluates the empirical CDF of values at each mark
func cdfAt(values, marks []float64) []CDFPoint {
	if len(values) == 0 {
		return nil
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	points := make([]CDFPoint, len(marks))
	for i, m := range marks {
		points[i] = CDFPoint{Value: m, Fraction: stat.CDF(m, stat.Empirical, sorted, nil)}
	}
	return points
}
