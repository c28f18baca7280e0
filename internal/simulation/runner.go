package simulation

import (
	"github.com/wonny/montecarlo/internal/scenario"
)

//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mock_simulation

// ScenarioSelector picks the scenario of one trial
type ScenarioSelector interface {
	Choose(weights scenario.Probabilities) (scenario.Scenario, error)
}

// PriceForecaster draws the exit price of one trial
type PriceForecaster interface {
	Forecast(s scenario.Scenario, valuations scenario.Valuations) (float64, error)
}

// SelectorFunc adapts a function to ScenarioSelector
type SelectorFunc func(weights scenario.Probabilities) (scenario.Scenario, error)

func (f SelectorFunc) Choose(weights scenario.Probabilities) (scenario.Scenario, error) {
	return f(weights)
}

// ForecasterFunc adapts a function to PriceForecaster
type ForecasterFunc func(s scenario.Scenario, valuations scenario.Valuations) (float64, error)

func (f ForecasterFunc) Forecast(s scenario.Scenario, valuations scenario.Valuations) (float64, error) {
	return f(s, valuations)
}

// Trial is the raw outcome of one trial
type Trial struct {
	Scenario scenario.Scenario
	Price    float64
}

// TrialRunner composes a selector and a forecaster
type TrialRunner struct {
	Selector   ScenarioSelector
	Forecaster PriceForecaster
}

// NewTrialRunner creates a runner backed by one sampler
func NewTrialRunner(sampler *Sampler) *TrialRunner {
	return &TrialRunner{Selector: sampler, Forecaster: sampler}
}

// Run selects a scenario, then forecasts its price
func (r *TrialRunner) Run(weights scenario.Probabilities, valuations scenario.Valuations) (Trial, error) {
	s, err := r.Selector.Choose(weights)
	if err != nil {
		return Trial{}, err
	}

	price, err := r.Forecaster.Forecast(s, valuations)
	if err != nil {
		return Trial{}, err
	}

	return Trial{Scenario: s, Price: price}, nil
}
