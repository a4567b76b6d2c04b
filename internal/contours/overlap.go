package contours

import (
	"math"

	"github.com/jaki95/melodist/internal/domain"
)

// A trajectory sample agrees with the annotation when both are voiced and
// the pitches are within this many cents of each other.
const overlapToleranceCents = 50.0

// ComputeOverlap fills every record's Overlap with the fraction of its
// trajectory samples that agree with the annotated melody. The result is
// always in [0, 1]; a contour with no trajectory gets 0. The input set is
// mutated and returned.
func ComputeOverlap(set *domain.ContourSet, annot *domain.Annotation) *domain.ContourSet {
	for _, r := range set.Records {
		r.Overlap = contourOverlap(r, annot)
	}
	return set
}

func contourOverlap(r *domain.ContourRecord, annot *domain.Annotation) float64 {
	if len(r.Times) == 0 {
		return 0
	}

	matches := 0
	for i, t := range r.Times {
		pitch := r.Pitches[i]
		if pitch <= 0 {
			continue
		}
		ref := annot.FrequencyAt(t)
		if ref <= 0 {
			continue
		}
		if centsDistance(pitch, ref) <= overlapToleranceCents {
			matches++
		}
	}

	return float64(matches) / float64(len(r.Times))
}

func centsDistance(a, b float64) float64 {
	return math.Abs(1200 * math.Log2(a/b))
}
