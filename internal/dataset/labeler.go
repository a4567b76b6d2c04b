package dataset

import (
	"fmt"

	"github.com/jaki95/melodist/internal/domain"
)

// LabelSplits sets every record's binary melody label in all three splits:
// 1 when its overlap is strictly greater than overlapThreshold, else 0.
// The threshold must be in [0, 1). Relabeling with the same threshold is
// idempotent.
func LabelSplits(splits *domain.SplitData, overlapThreshold float64) error {
	if overlapThreshold < 0 || overlapThreshold >= 1 {
		return fmt.Errorf("overlap threshold must be in [0, 1), got %g", overlapThreshold)
	}

	for _, contourDict := range []map[string]*domain.ContourSet{splits.Train, splits.Valid, splits.Test} {
		for _, set := range contourDict {
			LabelSet(set, overlapThreshold)
		}
	}

	return nil
}

// LabelSet labels a single track's contours in place.
func LabelSet(set *domain.ContourSet, overlapThreshold float64) {
	for _, r := range set.Records {
		if r.Overlap > overlapThreshold {
			r.Label = 1
		} else {
			r.Label = 0
		}
	}
}
