package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/jaki95/melodist/internal/domain"
)

// Description holds the standard descriptive statistics of a value column.
type Description struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// OverlapStats concatenates every contour's overlap across all tracks of
// the map, partitions them into the strictly-positive and zero subsets and
// describes each. Read-only; used for diagnostics.
func OverlapStats(contourDict map[string]*domain.ContourSet) (partial, zero Description) {
	sets := make([]*domain.ContourSet, 0, len(contourDict))
	for _, set := range contourDict {
		sets = append(sets, set)
	}
	overlaps := domain.ConcatSets(sets...).Overlaps()

	var positive, zeros []float64
	for _, o := range overlaps {
		if o > 0 {
			positive = append(positive, o)
		} else if o == 0 {
			zeros = append(zeros, o)
		}
	}

	return Describe(positive), Describe(zeros)
}

// Describe computes count, mean, std and the five-number summary of values.
// Moments of an empty column are NaN, matching the usual describe() output.
func Describe(values []float64) Description {
	if len(values) == 0 {
		nan := math.NaN()
		return Description{Count: 0, Mean: nan, Std: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)

	return Description{
		Count:  len(sorted),
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Q25:    stat.Quantile(0.25, stat.LinInterp, sorted, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		Q75:    stat.Quantile(0.75, stat.LinInterp, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}
