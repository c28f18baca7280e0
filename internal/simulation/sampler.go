package simulation

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/wonny/montecarlo/internal/financials"
	"github.com/wonny/montecarlo/internal/scenario"
)

// Sampler owns the random source of one run and implements both
// ScenarioSelector and PriceForecaster.
// Not safe for concurrent use: give each goroutine its own Sampler.
type Sampler struct {
	seed uint64
	src  rand.Source
}

// NewSampler creates a sampler. Seed 0 picks a time-based seed,
// which Seed() then reports so the run can be reproduced.
func NewSampler(seed uint64) *Sampler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Sampler{
		seed: seed,
		src:  rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}
}

// Seed returns the effective seed
func (s *Sampler) Seed() uint64 {
	return s.seed
}

// Choose draws a scenario with probability proportional to its weight.
// Keys are laid out in canonical order so a seed always maps to the same draws.
func (s *Sampler) Choose(weights scenario.Probabilities) (scenario.Scenario, error) {
	if err := weights.Validate(); err != nil {
		return "", err
	}

	keys := weights.Scenarios()
	w := make([]float64, len(keys))
	for i, k := range keys {
		w[i] = weights[k]
	}

	idx := int(distuv.NewCategorical(w, s.src).Rand())
	return keys[idx], nil
}

// Forecast draws an exit price for sc from its triangular valuation range, rounded to cents.
// The price always lies in [Low, High]; a draw whose rounding would cross a bound that is
// not a whole cent is returned unrounded.
func (s *Sampler) Forecast(sc scenario.Scenario, valuations scenario.Valuations) (float64, error) {
	r, err := valuations.Lookup(sc)
	if err != nil {
		return 0, err
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}

	// distuv.Triangle requires Low < High
	if r.Degenerate() {
		return r.Low, nil
	}

	price := distuv.NewTriangle(r.Low, r.High, r.Mode, s.src).Rand()
	if rounded := financials.RoundCents(price); r.Contains(rounded) {
		return rounded, nil
	}
	return price, nil
}
