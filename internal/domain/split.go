package domain

// SplitData holds the per-split experiment data: overlap-augmented contour
// sets keyed by track id, and for the validation and test splits the raw
// annotations needed for final evaluation.
type SplitData struct {
	Train map[string]*ContourSet
	Valid map[string]*ContourSet
	Test  map[string]*ContourSet

	ValidAnnotations map[string]*Annotation
	TestAnnotations  map[string]*Annotation
}

func NewSplitData() *SplitData {
	return &SplitData{
		Train:            make(map[string]*ContourSet),
		Valid:            make(map[string]*ContourSet),
		Test:             make(map[string]*ContourSet),
		ValidAnnotations: make(map[string]*Annotation),
		TestAnnotations:  make(map[string]*Annotation),
	}
}
