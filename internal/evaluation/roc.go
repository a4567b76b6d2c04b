// Package evaluation selects a classifier operating threshold from an ROC
// curve over predicted melody probabilities.
package evaluation

import (
	"fmt"
	"sort"
)

// Curve is an ROC curve in scikit-learn's shape: Thresholds holds the
// distinct predicted scores in decreasing order with a leading
// max(score)+1 sentinel, and FPR/TPR are the rates at each threshold,
// sorted by increasing false-positive rate.
type Curve struct {
	FPR        []float64
	TPR        []float64
	Thresholds []float64
}

func (c *Curve) Len() int {
	return len(c.FPR)
}

// ROCCurve computes the ROC curve of predicted scores against binary
// reference labels, treating label 1 as positive. Labels outside {0, 1},
// a single-class reference or mismatched inputs are validation errors; a
// degenerate curve is never returned silently.
func ROCCurve(refLabels []int, scores []float64) (*Curve, error) {
	if err := validateInputs(refLabels, scores); err != nil {
		return nil, err
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	positives := 0
	for _, y := range refLabels {
		positives += y
	}
	negatives := len(refLabels) - positives

	curve := &Curve{
		FPR:        []float64{0},
		TPR:        []float64{0},
		Thresholds: []float64{scores[order[0]] + 1},
	}

	tp, fp := 0, 0
	for i, idx := range order {
		if refLabels[idx] == 1 {
			tp++
		} else {
			fp++
		}

		// Emit one curve point per distinct score value.
		if i+1 < len(order) && scores[order[i+1]] == scores[idx] {
			continue
		}

		curve.FPR = append(curve.FPR, float64(fp)/float64(negatives))
		curve.TPR = append(curve.TPR, float64(tp)/float64(positives))
		curve.Thresholds = append(curve.Thresholds, scores[idx])
	}

	return curve, nil
}

func validateInputs(refLabels []int, scores []float64) error {
	if len(refLabels) == 0 {
		return fmt.Errorf("reference labels are empty")
	}
	if len(refLabels) != len(scores) {
		return fmt.Errorf("got %d reference labels but %d scores", len(refLabels), len(scores))
	}

	positives := 0
	for i, y := range refLabels {
		if y != 0 && y != 1 {
			return fmt.Errorf("reference label at index %d is %d, must be 0 or 1", i, y)
		}
		positives += y
	}

	if positives == 0 || positives == len(refLabels) {
		return fmt.Errorf("reference labels contain a single class, ROC is undefined")
	}

	return nil
}
