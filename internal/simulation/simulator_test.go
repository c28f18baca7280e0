package simulation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wonny/montecarlo/internal/scenario"
	mock_simulation "github.com/wonny/montecarlo/internal/simulation/mocks"
	"github.com/wonny/montecarlo/pkg/logger"
)

var cheggPosition = Position{EntryPrice: 1.30, ShareCount: 3050}

func fixedRunner(s scenario.Scenario, price float64) *TrialRunner {
	return &TrialRunner{
		Selector: SelectorFunc(func(scenario.Probabilities) (scenario.Scenario, error) {
			return s, nil
		}),
		Forecaster: ForecasterFunc(func(scenario.Scenario, scenario.Valuations) (float64, error) {
			return price, nil
		}),
	}
}

func TestSimulateRecords(t *testing.T) {
	sim := NewSimulator(Config{Seed: 42, ConfigHash: "abc"}, logger.Nop())
	valuations := cheggValuations()

	result, err := sim.Simulate(context.Background(), cheggPosition, 5000, cheggWeights(), valuations)
	require.NoError(t, err)

	assert.Equal(t, 5000, result.TrialCount)
	assert.Len(t, result.Records, 5000)
	assert.Equal(t, uint64(42), result.Seed)
	assert.Equal(t, "abc", result.ConfigHash)
	assert.Equal(t, cheggPosition, result.Position)
	assert.NotEmpty(t, result.RunID.String())

	for _, rec := range result.Records {
		r, ok := valuations[rec.Scenario]
		require.True(t, ok, "unexpected scenario %s", rec.Scenario)
		require.True(t, r.Contains(rec.Price))
	}
}

func TestSimulateSingleTrial(t *testing.T) {
	sim := NewSimulator(Config{Seed: 1}, nil)

	result, err := sim.Simulate(context.Background(), cheggPosition, 1, cheggWeights(), cheggValuations())
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
}

func TestSimulateGainArithmetic(t *testing.T) {
	tests := []struct {
		name        string
		price       float64
		wantPercent float64
		wantDollar  float64
	}{
		{"buyout at 3.00", 3.00, 130.77, 5185.00},
		{"flat", 1.30, 0, 0},
		{"stagnation at 1.20", 1.20, -7.69, -305.00},
		{"wiped out", 0, -100, -3965.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := NewSimulatorWithRunner(fixedRunner(scenario.Buyout, tt.price), logger.Nop())

			result, err := sim.Simulate(context.Background(), cheggPosition, 3, cheggWeights(), cheggValuations())
			require.NoError(t, err)

			for _, rec := range result.Records {
				assert.Equal(t, tt.price, rec.Price)
				assert.Equal(t, tt.wantPercent, rec.PercentGain)
				assert.Equal(t, tt.wantDollar, rec.DollarGain)
			}
		})
	}
}

func TestSimulateKeepsTrialOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	selector := mock_simulation.NewMockScenarioSelector(ctrl)
	forecaster := mock_simulation.NewMockPriceForecaster(ctrl)

	weights, valuations := cheggWeights(), cheggValuations()

	gomock.InOrder(
		selector.EXPECT().Choose(weights).Return(scenario.Buyout, nil),
		selector.EXPECT().Choose(weights).Return(scenario.Bankruptcy, nil),
		selector.EXPECT().Choose(weights).Return(scenario.Stagnation, nil),
	)
	gomock.InOrder(
		forecaster.EXPECT().Forecast(scenario.Buyout, valuations).Return(3.00, nil),
		forecaster.EXPECT().Forecast(scenario.Bankruptcy, valuations).Return(0.05, nil),
		forecaster.EXPECT().Forecast(scenario.Stagnation, valuations).Return(1.20, nil),
	)

	sim := NewSimulatorWithRunner(&TrialRunner{Selector: selector, Forecaster: forecaster}, logger.Nop())
	result, err := sim.Simulate(context.Background(), cheggPosition, 3, weights, valuations)
	require.NoError(t, err)

	expected := []TrialRecord{
		{Scenario: scenario.Buyout, Price: 3.00, PercentGain: 130.77, DollarGain: 5185.00},
		{Scenario: scenario.Bankruptcy, Price: 0.05, PercentGain: -96.15, DollarGain: -3812.50},
		{Scenario: scenario.Stagnation, Price: 1.20, PercentGain: -7.69, DollarGain: -305.00},
	}
	if diff := cmp.Diff(expected, result.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestSimulateInvalidArguments(t *testing.T) {
	tests := []struct {
		name     string
		position Position
		trials   int
	}{
		{"zero trials", cheggPosition, 0},
		{"negative trials", cheggPosition, -5},
		{"zero entry price", Position{EntryPrice: 0, ShareCount: 3050}, 10},
		{"negative entry price", Position{EntryPrice: -1.30, ShareCount: 3050}, 10},
		{"zero shares", Position{EntryPrice: 1.30, ShareCount: 0}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: any sampling fails the test
			ctrl := gomock.NewController(t)
			runner := &TrialRunner{
				Selector:   mock_simulation.NewMockScenarioSelector(ctrl),
				Forecaster: mock_simulation.NewMockPriceForecaster(ctrl),
			}

			result, err := NewSimulatorWithRunner(runner, logger.Nop()).
				Simulate(context.Background(), tt.position, tt.trials, cheggWeights(), cheggValuations())
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, result)
		})
	}
}

func TestSimulateInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		weights     scenario.Probabilities
		valuations  scenario.Valuations
		wantMissing bool
	}{
		{"empty weights", scenario.Probabilities{}, cheggValuations(), false},
		{"all zero weights", scenario.Probabilities{
			scenario.Bankruptcy: 0, scenario.Buyout: 0, scenario.Turnaround: 0, scenario.Stagnation: 0,
		}, cheggValuations(), false},
		{"missing valuation", cheggWeights(), without(cheggValuations(), scenario.Turnaround), true},
		{"inverted range", cheggWeights(), func() scenario.Valuations {
			v := cheggValuations()
			v[scenario.Buyout] = scenario.ValuationRange{Low: 3.5, Mode: 3.2, High: 2.2}
			return v
		}(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := &TrialRunner{
				Selector:   mock_simulation.NewMockScenarioSelector(ctrl),
				Forecaster: mock_simulation.NewMockPriceForecaster(ctrl),
			}

			result, err := NewSimulatorWithRunner(runner, logger.Nop()).
				Simulate(context.Background(), cheggPosition, 10, tt.weights, tt.valuations)
			require.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Equal(t, tt.wantMissing, errors.Is(err, ErrMissingValuation))
			assert.Nil(t, result)
		})
	}
}

func TestSimulateRunnerFailure(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	runner := &TrialRunner{
		Selector: SelectorFunc(func(scenario.Probabilities) (scenario.Scenario, error) {
			return scenario.Buyout, nil
		}),
		Forecaster: ForecasterFunc(func(scenario.Scenario, scenario.Valuations) (float64, error) {
			calls++
			if calls == 3 {
				return 0, boom
			}
			return 3.00, nil
		}),
	}

	result, err := NewSimulatorWithRunner(runner, logger.Nop()).
		Simulate(context.Background(), cheggPosition, 10, cheggWeights(), cheggValuations())
	require.ErrorIs(t, err, boom)
	assert.Nil(t, result)
	assert.Equal(t, 3, calls)
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := NewSimulator(Config{Seed: 1}, logger.Nop()).
		Simulate(ctx, cheggPosition, 10, cheggWeights(), cheggValuations())
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestSimulateReproducible(t *testing.T) {
	run := func() []TrialRecord {
		result, err := NewSimulator(Config{Seed: 777}, logger.Nop()).
			Simulate(context.Background(), cheggPosition, 2000, cheggWeights(), cheggValuations())
		require.NoError(t, err)
		return result.Records
	}

	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("seeded runs differ (-first +second):\n%s", diff)
	}
}

func TestSimulateScenarioFrequencies(t *testing.T) {
	const n = 100000
	weights := cheggWeights()

	result, err := NewSimulator(Config{Seed: 2024}, logger.Nop()).
		Simulate(context.Background(), cheggPosition, n, weights, cheggValuations())
	require.NoError(t, err)

	counts := result.Counts()
	for sc, w := range weights {
		assert.InDelta(t, w, float64(counts[sc])/n, 0.01, "scenario %s", sc)
	}
}

func TestTrialRunnerStopsOnSelectorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	selector := mock_simulation.NewMockScenarioSelector(ctrl)
	forecaster := mock_simulation.NewMockPriceForecaster(ctrl)

	selector.EXPECT().Choose(gomock.Any()).Return(scenario.Scenario(""), ErrInvalidConfiguration)

	_, err := (&TrialRunner{Selector: selector, Forecaster: forecaster}).Run(scenario.Probabilities{}, cheggValuations())
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}
