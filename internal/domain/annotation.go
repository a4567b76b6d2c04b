package domain

import "sort"

// Annotation is the reference melody pitch track for one track and melody
// type: uniformly sampled (time, frequency) pairs where frequency 0 means
// no melody is active (unvoiced).
type Annotation struct {
	Times       []float64 `json:"times"`
	Frequencies []float64 `json:"frequencies"`
}

func (a *Annotation) Len() int {
	return len(a.Times)
}

// FrequencyAt returns the annotation frequency at the sample nearest to t,
// or 0 when the annotation is empty or t falls outside its time support.
func (a *Annotation) FrequencyAt(t float64) float64 {
	n := len(a.Times)
	if n == 0 {
		return 0
	}
	if t < a.Times[0] || t > a.Times[n-1] {
		return 0
	}

	i := sort.SearchFloat64s(a.Times, t)
	if i == n {
		return a.Frequencies[n-1]
	}
	if i > 0 && t-a.Times[i-1] < a.Times[i]-t {
		i--
	}
	return a.Frequencies[i]
}

// Copy returns a deep copy of the annotation.
func (a *Annotation) Copy() *Annotation {
	out := &Annotation{
		Times:       make([]float64, len(a.Times)),
		Frequencies: make([]float64, len(a.Frequencies)),
	}
	copy(out.Times, a.Times)
	copy(out.Frequencies, a.Frequencies)
	return out
}
