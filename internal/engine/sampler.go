package engine

import (
	"math/rand"
	"time"
)

// Sampler provides the random draws consumed by synthetic history generation
// and forecasting. Implementations do not need to be safe for concurrent
// use; the engine builds a fresh sampler per operation.
type Sampler interface {
	// BaseSales returns a base units-sold draw for one product-day: zero on
	// roughly 30% of draws, otherwise uniform in [1, 10].
	BaseSales() int
	// Noise returns a forecast variance multiplier uniform in [0.8, 1.2).
	Noise() float64
}

type randSampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler backed by math/rand with the given seed.
func NewSampler(seed int64) Sampler {
	return &randSampler{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomSampler returns a Sampler seeded from the wall clock.
func NewRandomSampler() Sampler {
	return NewSampler(time.Now().UnixNano())
}

func (s *randSampler) BaseSales() int {
	if s.rng.Float64() > 0.3 {
		return s.rng.Intn(10) + 1
	}
	return 0
}

func (s *randSampler) Noise() float64 {
	return 0.8 + s.rng.Float64()*0.4
}
