package scenario

import (
	"fmt"

	"github.com/wonny/montecarlo/internal/financials"
)

// File is the on-disk description of one position and its scenario assumptions
type File struct {
	Meta         Meta                    `yaml:"meta" json:"meta"`
	Position     PositionSpec            `yaml:"position" json:"position"`
	Simulation   SimulationSpec          `yaml:"simulation" json:"simulation"`
	Scenarios    map[string]ScenarioSpec `yaml:"scenarios" json:"scenarios"`
	DefaultModel *DefaultModel           `yaml:"default_model,omitempty" json:"default_model,omitempty"`
}

// Meta describes the instrument
type Meta struct {
	Ticker      string `yaml:"ticker" json:"ticker"`
	AsOf        string `yaml:"as_of" json:"as_of"` // YYYY-MM-DD
	Description string `yaml:"description" json:"description"`
}

// PositionSpec is the held position
type PositionSpec struct {
	EntryPrice float64 `yaml:"entry_price" json:"entry_price"` // average cost per share
	ShareCount int     `yaml:"share_count" json:"share_count"`
}

// SimulationSpec holds run parameters
type SimulationSpec struct {
	Trials int    `yaml:"trials" json:"trials"`
	Seed   uint64 `yaml:"seed" json:"seed"` // 0 = random
}

// ScenarioSpec holds the subjective inputs for one scenario.
// Weight is omitted when DefaultModel derives it.
type ScenarioSpec struct {
	Weight    *float64       `yaml:"weight,omitempty" json:"weight,omitempty"`
	Valuation ValuationRange `yaml:"valuation" json:"valuation"`
	Notes     string         `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// DefaultModel derives one scenario's weight from bond yields
type DefaultModel struct {
	Scenario        string  `yaml:"scenario" json:"scenario"`
	CompanyYield    float64 `yaml:"company_yield" json:"company_yield"`
	TreasuryYield   float64 `yaml:"treasury_yield" json:"treasury_yield"`
	TimeFrameMonths int     `yaml:"time_frame_months" json:"time_frame_months"`
}

// Estimate runs the default-probability estimator on the model inputs
func (m DefaultModel) Estimate() financials.DefaultEstimate {
	return financials.EstimateDefault(m.CompanyYield, m.TreasuryYield, m.TimeFrameMonths)
}

// DerivedWeight is the estimated probability rounded to 2 places
func (m DefaultModel) DerivedWeight() float64 {
	return financials.RoundCents(m.Estimate().Probability)
}

// Probabilities returns the weight mapping, deriving the default-model weight if configured
func (f *File) Probabilities() (Probabilities, error) {
	weights := make(Probabilities, len(f.Scenarios))

	for name, spec := range f.Scenarios {
		s, err := Parse(name)
		if err != nil {
			return nil, err
		}

		switch {
		case spec.Weight != nil:
			weights[s] = *spec.Weight
		case f.DefaultModel != nil && f.DefaultModel.Scenario == name:
			weights[s] = f.DefaultModel.DerivedWeight()
		default:
			return nil, fmt.Errorf("%w: scenario %q has no weight", ErrInvalidConfiguration, name)
		}
	}

	return weights, nil
}

// Valuations returns the valuation mapping
func (f *File) Valuations() (Valuations, error) {
	valuations := make(Valuations, len(f.Scenarios))

	for name, spec := range f.Scenarios {
		s, err := Parse(name)
		if err != nil {
			return nil, err
		}
		valuations[s] = spec.Valuation
	}

	return valuations, nil
}

// Clone returns a deep copy so callers can override fields without touching shared state
func (f *File) Clone() *File {
	out := *f

	out.Scenarios = make(map[string]ScenarioSpec, len(f.Scenarios))
	for name, spec := range f.Scenarios {
		if spec.Weight != nil {
			w := *spec.Weight
			spec.Weight = &w
		}
		out.Scenarios[name] = spec
	}

	if f.DefaultModel != nil {
		dm := *f.DefaultModel
		out.DefaultModel = &dm
	}

	return &out
}
