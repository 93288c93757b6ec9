package randx

// Scripted is a Source for tests. Each call pops the next scripted value;
// once a script runs out the call falls back to its lower bound, so tests
// only script the draws they care about.
type Scripted struct {
	Ints    []int
	Floats  []float64
	Indexes [][]int
}

func (s *Scripted) IntBetween(lo, hi int) int {
	if len(s.Ints) == 0 {
		return lo
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v
}

func (s *Scripted) Uniform(lo, hi float64) float64 {
	if len(s.Floats) == 0 {
		return lo
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *Scripted) SampleIndexes(n, k int) []int {
	if len(s.Indexes) == 0 {
		out := make([]int, 0, k)
		for i := 0; i < k; i++ {
			out = append(out, i)
		}
		return out
	}
	v := s.Indexes[0]
	s.Indexes = s.Indexes[1:]
	return v
}
