package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaki95/melodist/internal/domain"
)

func TestOverlapStats(t *testing.T) {
	trainDict := map[string]*domain.ContourSet{
		"t1": {TrackID: "t1", Records: []*domain.ContourRecord{
			{Overlap: 0}, {Overlap: 0.6}, {Overlap: 0.9},
		}},
		"t2": {TrackID: "t2", Records: []*domain.ContourRecord{
			{Overlap: 0}, {Overlap: 0.2},
		}},
	}

	partial, zero := OverlapStats(trainDict)

	assert.Equal(t, 3, partial.Count)
	assert.Equal(t, 2, zero.Count)
	assert.InDelta(t, (0.6+0.9+0.2)/3, partial.Mean, 1e-12)
	assert.Equal(t, 0.2, partial.Min)
	assert.Equal(t, 0.9, partial.Max)
	assert.Equal(t, 0.0, zero.Mean)
	assert.Equal(t, 0.0, zero.Min)
	assert.Equal(t, 0.0, zero.Max)
}

func TestDescribe(t *testing.T) {
	d := Describe([]float64{1, 2, 3, 4})

	assert.Equal(t, 4, d.Count)
	assert.InDelta(t, 2.5, d.Mean, 1e-12)
	assert.InDelta(t, 1.2909944487, d.Std, 1e-9)
	assert.Equal(t, 1.0, d.Min)
	assert.InDelta(t, 1.75, d.Q25, 1e-12)
	assert.InDelta(t, 2.5, d.Median, 1e-12)
	assert.InDelta(t, 3.25, d.Q75, 1e-12)
	assert.Equal(t, 4.0, d.Max)
}

func TestDescribeEmpty(t *testing.T) {
	d := Describe(nil)

	assert.Equal(t, 0, d.Count)
	assert.True(t, math.IsNaN(d.Mean))
	assert.True(t, math.IsNaN(d.Min))
	assert.True(t, math.IsNaN(d.Max))
}
