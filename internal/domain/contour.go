package domain

// Sentinel values for fields that have not been computed yet.
const (
	LabelUnset   = -1
	MelProbUnset = -1.0
)

// ContourRecord is a single candidate pitch contour for a track, as emitted
// by the Melodia contour extractor, together with the values derived from it
// during an experiment (annotation overlap, melody label, melody probability).
type ContourRecord struct {
	Number int `json:"number"`

	Onset    float64 `json:"onset"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`

	PitchMean       float64 `json:"pitch_mean"`
	PitchStd        float64 `json:"pitch_std"`
	SalienceMean    float64 `json:"salience_mean"`
	SalienceStd     float64 `json:"salience_std"`
	SalienceTotal   float64 `json:"salience_total"`
	VibratoRate     float64 `json:"vibrato_rate"`
	VibratoExtent   float64 `json:"vibrato_extent"`
	VibratoCoverage float64 `json:"vibrato_coverage"`

	// Time/pitch/salience trajectory samples, parallel slices.
	Times     []float64 `json:"-"`
	Pitches   []float64 `json:"-"`
	Saliences []float64 `json:"-"`

	// Fraction of the contour's trajectory that coincides with the
	// ground-truth melody. In [0, 1] once computed.
	Overlap float64 `json:"overlap"`

	// Binary melody label derived from Overlap. LabelUnset until labeling.
	Label int `json:"label"`

	// Positive-class probability from a classifier. MelProbUnset until scored.
	MelProb float64 `json:"mel_prob"`
}

// FeatureNames lists the classifier feature columns in projection order.
var FeatureNames = []string{
	"duration",
	"pitch_mean",
	"pitch_std",
	"salience_mean",
	"salience_std",
	"salience_total",
	"vibrato_rate",
	"vibrato_extent",
	"vibrato_coverage",
}

// Feature column indices, matching FeatureNames.
const (
	FeatDuration = iota
	FeatPitchMean
	FeatPitchStd
	FeatSalienceMean
	FeatSalienceStd
	FeatSalienceTotal
	FeatVibratoRate
	FeatVibratoExtent
	FeatVibratoCoverage
	NumFeatures
)

// Features returns the record's feature vector in FeatureNames order.
func (r *ContourRecord) Features() []float64 {
	return []float64{
		r.Duration,
		r.PitchMean,
		r.PitchStd,
		r.SalienceMean,
		r.SalienceStd,
		r.SalienceTotal,
		r.VibratoRate,
		r.VibratoExtent,
		r.VibratoCoverage,
	}
}

// ContourSet is the ordered collection of contour candidates for one track.
type ContourSet struct {
	TrackID string           `json:"track_id"`
	Records []*ContourRecord `json:"records"`
}

func (s *ContourSet) Len() int {
	return len(s.Records)
}

// Filter returns a new set holding the records for which pred is true.
// Records are shared, not copied.
func (s *ContourSet) Filter(pred func(*ContourRecord) bool) *ContourSet {
	out := &ContourSet{TrackID: s.TrackID}
	for _, r := range s.Records {
		if pred(r) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

// Overlaps returns the overlap column of the set.
func (s *ContourSet) Overlaps() []float64 {
	out := make([]float64, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Overlap
	}
	return out
}

// ConcatSets joins several per-track sets into one cross-track set.
// Records are shared, not copied; the result has no single track id.
func ConcatSets(sets ...*ContourSet) *ContourSet {
	out := &ContourSet{}
	for _, s := range sets {
		out.Records = append(out.Records, s.Records...)
	}
	return out
}
