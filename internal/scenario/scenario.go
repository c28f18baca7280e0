package scenario

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrInvalidConfiguration marks malformed weights or valuation ranges
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrMissingValuation marks a scenario that has no valuation range
	ErrMissingValuation = errors.New("missing valuation")
)

// Scenario is one of the fixed, mutually exclusive futures of the position
type Scenario string

const (
	Bankruptcy Scenario = "bankruptcy" // stock goes to (near) zero
	Buyout     Scenario = "buyout"     // acquirer pays a premium
	Turnaround Scenario = "turnaround" // revenue and valuation rebound
	Stagnation Scenario = "stagnation" // business flatlines, costs cut
)

var all = []Scenario{Bankruptcy, Buyout, Turnaround, Stagnation}

// All returns every scenario in canonical order
func All() []Scenario {
	out := make([]Scenario, len(all))
	copy(out, all)
	return out
}

// Parse converts a name into a Scenario
func Parse(name string) (Scenario, error) {
	s := Scenario(name)
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown scenario %q", ErrInvalidConfiguration, name)
	}
	return s, nil
}

// Valid reports whether s is one of the known scenarios
func (s Scenario) Valid() bool {
	return s.rank() < len(all)
}

func (s Scenario) String() string {
	return string(s)
}

// rank is the canonical position of s; unknown scenarios sort after known ones
func (s Scenario) rank() int {
	for i, known := range all {
		if s == known {
			return i
		}
	}
	return len(all)
}

// Sort orders scenarios canonically (known scenarios first, then by name)
func Sort(scenarios []Scenario) {
	sort.Slice(scenarios, func(i, j int) bool {
		ri, rj := scenarios[i].rank(), scenarios[j].rank()
		if ri != rj {
			return ri < rj
		}
		return scenarios[i] < scenarios[j]
	})
}

// =============================================================================
// Weights
// =============================================================================

// Probabilities maps each scenario to a relative weight.
// Weights need not sum to 1.
type Probabilities map[Scenario]float64

// Scenarios returns the keys in canonical order
func (p Probabilities) Scenarios() []Scenario {
	keys := make([]Scenario, 0, len(p))
	for s := range p {
		keys = append(keys, s)
	}
	Sort(keys)
	return keys
}

// Total returns the sum of all weights
func (p Probabilities) Total() float64 {
	var sum float64
	for _, w := range p {
		sum += w
	}
	return sum
}

// Validate requires a non-empty mapping of finite, non-negative weights with a positive sum
func (p Probabilities) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: no scenario weights", ErrInvalidConfiguration)
	}

	for _, s := range p.Scenarios() {
		w := p[s]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: weight for %q is not a finite number", ErrInvalidConfiguration, s)
		}
		if w < 0 {
			return fmt.Errorf("%w: weight for %q is negative (%g)", ErrInvalidConfiguration, s, w)
		}
	}

	if p.Total() <= 0 {
		return fmt.Errorf("%w: all scenario weights are zero", ErrInvalidConfiguration)
	}

	return nil
}

// =============================================================================
// Valuations
// =============================================================================

// ValuationRange holds triangular-distribution parameters for a scenario's exit price
type ValuationRange struct {
	Low  float64 `yaml:"low" json:"low"`
	Mode float64 `yaml:"mode" json:"mode"`
	High float64 `yaml:"high" json:"high"`
}

// Degenerate reports whether the range collapses to a single price
func (r ValuationRange) Degenerate() bool {
	return r.Low == r.High
}

// Contains reports whether price lies in [Low, High]
func (r ValuationRange) Contains(price float64) bool {
	return price >= r.Low && price <= r.High
}

// Validate requires 0 <= Low <= Mode <= High with finite values
func (r ValuationRange) Validate() error {
	for _, v := range []float64{r.Low, r.Mode, r.High} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: valuation range %v has a non-finite bound", ErrInvalidConfiguration, r)
		}
		if v < 0 {
			return fmt.Errorf("%w: valuation range %v has a negative bound", ErrInvalidConfiguration, r)
		}
	}
	if r.Low > r.Mode {
		return fmt.Errorf("%w: valuation low %g > mode %g", ErrInvalidConfiguration, r.Low, r.Mode)
	}
	if r.Mode > r.High {
		return fmt.Errorf("%w: valuation mode %g > high %g", ErrInvalidConfiguration, r.Mode, r.High)
	}
	return nil
}

// Valuations maps each scenario to its exit-price range
type Valuations map[Scenario]ValuationRange

// Scenarios returns the keys in canonical order
func (v Valuations) Scenarios() []Scenario {
	keys := make([]Scenario, 0, len(v))
	for s := range v {
		keys = append(keys, s)
	}
	Sort(keys)
	return keys
}

// Lookup returns the range for s or ErrMissingValuation
func (v Valuations) Lookup(s Scenario) (ValuationRange, error) {
	r, ok := v[s]
	if !ok {
		return ValuationRange{}, fmt.Errorf("%w: no valuation range for scenario %q", ErrMissingValuation, s)
	}
	return r, nil
}

// Validate checks every range
func (v Valuations) Validate() error {
	if len(v) == 0 {
		return fmt.Errorf("%w: no valuation ranges", ErrInvalidConfiguration)
	}
	for _, s := range v.Scenarios() {
		if err := v[s].Validate(); err != nil {
			return fmt.Errorf("scenario %q: %w", s, err)
		}
	}
	return nil
}

// CheckConsistency validates both mappings and requires them to cover the same scenarios.
// A weighted scenario with no range matches both ErrInvalidConfiguration and ErrMissingValuation.
func CheckConsistency(weights Probabilities, valuations Valuations) error {
	if err := weights.Validate(); err != nil {
		return err
	}
	if err := valuations.Validate(); err != nil {
		return err
	}

	for _, s := range weights.Scenarios() {
		if _, ok := valuations[s]; !ok {
			return fmt.Errorf("%w: %w: scenario %q has a weight but no valuation range",
				ErrInvalidConfiguration, ErrMissingValuation, s)
		}
	}
	for _, s := range valuations.Scenarios() {
		if _, ok := weights[s]; !ok {
			return fmt.Errorf("%w: scenario %q has a valuation range but no weight", ErrInvalidConfiguration, s)
		}
	}

	return nil
}
