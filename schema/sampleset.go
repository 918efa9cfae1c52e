package schema

// SampleSet is an ordered, size-bounded sequence of elapsed-time observations
// in seconds. A limit of zero or less means unbounded.
type SampleSet struct {
	samples []float64
	limit   int
}

// NewSampleSet returns a sample set that accepts at most limit observations.
func NewSampleSet(limit int) *SampleSet {
	return &SampleSet{limit: limit}
}

// Add appends an observation, dropping it once the limit has been reached.
func (s *SampleSet) Add(v float64) {
	if s.limit > 0 && len(s.samples) >= s.limit {
		return
	}
	s.samples = append(s.samples, v)
}

// Len returns the number of observations collected.
func (s *SampleSet) Len() int {
	return len(s.samples)
}

// Mean returns the arithmetic mean of the observations. The second return
// value is false when the set is empty; an empty set never yields zero.
func (s *SampleSet) Mean() (float64, bool) {
	if len(s.samples) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range s.samples {
		sum += v
	}
	return sum / float64(len(s.samples)), true
}
