package evaluation

import (
	"gonum.org/v1/gonum/floats"
)

// FScores derives an F-score at every curve point from the precision proxy
// P = 1 - FPR and recall R = TPR. Note the proxy equals true precision only
// when the classes are balanced. Points where P + R == 0 get F = 0 instead
// of a propagated NaN.
func FScores(c *Curve) []float64 {
	f := make([]float64, c.Len())
	for i := range f {
		p := 1 - c.FPR[i]
		r := c.TPR[i]
		if p+r == 0 {
			f[i] = 0
			continue
		}
		f[i] = 2 * p * r / (p + r)
	}
	return f
}

// BestThreshold computes the ROC curve of scores against refLabels and
// returns the score threshold with the maximum F-score, together with that
// F-score. Ties resolve to the first maximum in curve order (the curve is
// sorted by increasing FPR).
func BestThreshold(refLabels []int, scores []float64) (threshold, fScore float64, err error) {
	curve, err := ROCCurve(refLabels, scores)
	if err != nil {
		return 0, 0, err
	}

	f := FScores(curve)
	best := floats.MaxIdx(f)

	return curve.Thresholds[best], f[best], nil
}
