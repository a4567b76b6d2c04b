package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeaturesOrder(t *testing.T) {
	r := &ContourRecord{
		Duration:        1,
		PitchMean:       2,
		PitchStd:        3,
		SalienceMean:    4,
		SalienceStd:     5,
		SalienceTotal:   6,
		VibratoRate:     7,
		VibratoExtent:   8,
		VibratoCoverage: 9,
	}

	f := r.Features()
	assert.Len(t, f, NumFeatures)
	assert.Len(t, FeatureNames, NumFeatures)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, f)
	assert.Equal(t, 4.0, f[FeatSalienceMean])
}

func TestFilter(t *testing.T) {
	set := &ContourSet{
		TrackID: "Track1",
		Records: []*ContourRecord{
			{Number: 0, Overlap: 0},
			{Number: 1, Overlap: 0.6},
			{Number: 2, Overlap: 0.9},
		},
	}

	positive := set.Filter(func(r *ContourRecord) bool { return r.Overlap > 0 })

	assert.Equal(t, "Track1", positive.TrackID)
	assert.Equal(t, 2, positive.Len())
	assert.Equal(t, 1, positive.Records[0].Number)
	assert.Equal(t, 2, positive.Records[1].Number)

	// Records are shared with the source set.
	assert.Same(t, set.Records[1], positive.Records[0])
}

func TestConcatSets(t *testing.T) {
	a := &ContourSet{TrackID: "a", Records: []*ContourRecord{{Number: 0}, {Number: 1}}}
	b := &ContourSet{TrackID: "b", Records: []*ContourRecord{{Number: 2}}}

	joined := ConcatSets(a, b)

	assert.Equal(t, 3, joined.Len())
	assert.Equal(t, "", joined.TrackID)
	assert.Equal(t, []float64{0, 0, 0}, joined.Overlaps())
}

func TestAnnotationFrequencyAt(t *testing.T) {
	annot := &Annotation{
		Times:       []float64{0, 0.01, 0.02, 0.03},
		Frequencies: []float64{0, 220, 220, 0},
	}

	assert.Equal(t, 0.0, annot.FrequencyAt(0))
	assert.Equal(t, 220.0, annot.FrequencyAt(0.01))
	// Nearest-sample lookup between grid points.
	assert.Equal(t, 220.0, annot.FrequencyAt(0.014))
	assert.Equal(t, 220.0, annot.FrequencyAt(0.019))
	// Outside the annotation's time support.
	assert.Equal(t, 0.0, annot.FrequencyAt(-1))
	assert.Equal(t, 0.0, annot.FrequencyAt(5))
}

func TestAnnotationCopy(t *testing.T) {
	annot := &Annotation{Times: []float64{0, 0.01}, Frequencies: []float64{0, 220}}

	clone := annot.Copy()
	clone.Frequencies[1] = 440

	assert.Equal(t, 220.0, annot.Frequencies[1])
	assert.Equal(t, 440.0, clone.Frequencies[1])
	assert.Equal(t, annot.Times, clone.Times)
}
