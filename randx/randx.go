package randx

import (
	"math/rand/v2"
	"time"

	"github.com/grilldesk/sampledata/set"
)

// Source is the uniform randomness the generators draw from. Keeping it
// behind an interface lets tests script draws exactly instead of hunting
// for magic seeds.
type Source interface {
	// IntBetween returns a uniform int in [lo, hi], both ends inclusive.
	IntBetween(lo, hi int) int
	// Uniform returns a uniform float64 in [lo, hi).
	Uniform(lo, hi float64) float64
	// SampleIndexes returns k distinct indexes in [0, n).
	SampleIndexes(n, k int) []int
}

type pcgSource struct {
	r *rand.Rand
}

// New returns a PCG-backed Source. Seed 0 seeds from the clock, so default
// runs are non-reproducible run-to-run.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *pcgSource) IntBetween(lo, hi int) int {
	return lo + s.r.IntN(hi-lo+1)
}

func (s *pcgSource) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

func (s *pcgSource) SampleIndexes(n, k int) []int {
	picked := set.Set[int]{}
	out := make([]int, 0, k)
	for len(out) < k {
		i := s.r.IntN(n)
		if picked.Exists(i) {
			continue
		}
		picked.Add(i)
		out = append(out, i)
	}
	return out
}

// Pick returns one uniform element of pool.
func Pick[T any](s Source, pool []T) T {
	return pool[s.IntBetween(0, len(pool)-1)]
}

// Sample returns k elements of pool drawn without replacement.
func Sample[T any](s Source, pool []T, k int) []T {
	out := make([]T, 0, k)
	for _, i := range s.SampleIndexes(len(pool), k) {
		out = append(out, pool[i])
	}
	return out
}
