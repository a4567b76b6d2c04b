package classify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaki95/melodist/internal/domain"
)

type stubClassifier struct {
	probs [][]float64
	err   error
}

func (s *stubClassifier) PredictProba(X [][]float64) ([][]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.probs, nil
}

func setWithRecords(n int) *domain.ContourSet {
	set := &domain.ContourSet{TrackID: "t1"}
	for i := 0; i < n; i++ {
		set.Records = append(set.Records, &domain.ContourRecord{
			Number:       i,
			SalienceMean: float64(i),
			Label:        i % 2,
			MelProb:      domain.MelProbUnset,
		})
	}
	return set
}

func TestScoreContours(t *testing.T) {
	set := setWithRecords(3)
	clf := &stubClassifier{probs: [][]float64{{0.9, 0.1}, {0.5, 0.5}, {0.2, 0.8}}}

	scored, err := ScoreContours(clf, set)
	require.NoError(t, err)

	// Same set, same cardinality, same ordering.
	assert.Same(t, set, scored)
	require.Equal(t, 3, scored.Len())
	for i, r := range scored.Records {
		assert.Equal(t, i, r.Number)
	}

	assert.Equal(t, []float64{0.1, 0.5, 0.8}, MelProbs(scored))
}

func TestScoreContoursShapeMismatch(t *testing.T) {
	set := setWithRecords(3)

	_, err := ScoreContours(&stubClassifier{probs: [][]float64{{0.9, 0.1}}}, set)
	assert.Error(t, err)

	_, err = ScoreContours(&stubClassifier{probs: [][]float64{{1}, {1}, {1}}}, set)
	assert.Error(t, err)
}

func TestScoreContoursClassifierError(t *testing.T) {
	set := setWithRecords(2)
	boom := errors.New("model not fitted")

	_, err := ScoreContours(&stubClassifier{err: boom}, set)
	assert.ErrorIs(t, err, boom)
}

func TestFeatureMatrix(t *testing.T) {
	set := setWithRecords(2)
	set.Records[0].Duration = 1.5

	X := FeatureMatrix(set)

	require.Len(t, X, 2)
	assert.Len(t, X[0], domain.NumFeatures)
	assert.Equal(t, 1.5, X[0][domain.FeatDuration])
	assert.Equal(t, 1.0, X[1][domain.FeatSalienceMean])
}

func TestLabels(t *testing.T) {
	set := setWithRecords(4)
	assert.Equal(t, []int{0, 1, 0, 1}, Labels(set))
}

func TestSalienceBaseline(t *testing.T) {
	set := setWithRecords(5)

	scored, err := ScoreContours(SalienceBaseline{}, set)
	require.NoError(t, err)

	probs := MelProbs(scored)
	require.Len(t, probs, 5)
	for i, p := range probs {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		if i > 0 {
			// Logistic of salience mean is monotonic in the feature.
			assert.Greater(t, p, probs[i-1])
		}
	}
}

func TestSalienceBaselineBadRow(t *testing.T) {
	_, err := SalienceBaseline{}.PredictProba([][]float64{{1, 2}})
	assert.Error(t, err)
}
