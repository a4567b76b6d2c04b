// Package classify applies a binary melody classifier to contour features.
package classify

import (
	"fmt"
	"math"

	"github.com/jaki95/melodist/internal/domain"
)

// Classifier is any model that predicts per-class probabilities for a
// feature matrix: one [P(class=0), P(class=1)] row per input row.
type Classifier interface {
	PredictProba(X [][]float64) ([][]float64, error)
}

// FeatureMatrix projects a contour set onto its classifier feature matrix,
// one row per record in set order.
func FeatureMatrix(set *domain.ContourSet) [][]float64 {
	X := make([][]float64, len(set.Records))
	for i, r := range set.Records {
		X[i] = r.Features()
	}
	return X
}

// Labels returns the label column of a set, in set order.
func Labels(set *domain.ContourSet) []int {
	y := make([]int, len(set.Records))
	for i, r := range set.Records {
		y[i] = r.Label
	}
	return y
}

// MelProbs returns the melody probability column of a set, in set order.
func MelProbs(set *domain.ContourSet) []float64 {
	p := make([]float64, len(set.Records))
	for i, r := range set.Records {
		p[i] = r.MelProb
	}
	return p
}

// ScoreContours attaches the classifier's positive-class probability to
// every record of the set as MelProb. Record count and order are
// preserved; classifier failures propagate.
func ScoreContours(clf Classifier, set *domain.ContourSet) (*domain.ContourSet, error) {
	probs, err := clf.PredictProba(FeatureMatrix(set))
	if err != nil {
		return nil, err
	}

	if len(probs) != len(set.Records) {
		return nil, fmt.Errorf("classifier returned %d probability rows for %d contours", len(probs), len(set.Records))
	}

	for i, row := range probs {
		if len(row) != 2 {
			return nil, fmt.Errorf("classifier probability row %d has %d classes, want 2", i, len(row))
		}
		set.Records[i].MelProb = row[1]
	}

	return set, nil
}

// SalienceBaseline is a deterministic stand-in classifier: the melody
// probability is a logistic squash of the (standardized) mean salience
// feature. Useful for end-to-end runs without a trained model.
type SalienceBaseline struct{}

func (SalienceBaseline) PredictProba(X [][]float64) ([][]float64, error) {
	probs := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != domain.NumFeatures {
			return nil, fmt.Errorf("feature row %d has %d features, want %d", i, len(row), domain.NumFeatures)
		}
		p := 1 / (1 + math.Exp(-row[domain.FeatSalienceMean]))
		probs[i] = []float64{1 - p, p}
	}
	return probs, nil
}
