package report

import (
	"github.com/wonny/montecarlo/internal/financials"
	"github.com/wonny/montecarlo/internal/scenario"
	"github.com/wonny/montecarlo/internal/simulation"
)

// ScenarioShare is how often a scenario occurred and what it paid
type ScenarioShare struct {
	Scenario       scenario.Scenario `json:"scenario"`
	Count          int               `json:"count"`
	Frequency      float64           `json:"frequency"`
	MeanPrice      float64           `json:"mean_price"`
	MeanDollarGain float64           `json:"mean_dollar_gain"`
}

// ScenarioDistribution groups records by scenario in canonical order.
// Scenarios that never occurred are omitted.
func ScenarioDistribution(records []simulation.TrialRecord) []ScenarioShare {
	if len(records) == 0 {
		return nil
	}

	type acc struct {
		count         int
		price, dollar float64
	}
	groups := make(map[scenario.Scenario]*acc)
	keys := make([]scenario.Scenario, 0, 4)

	for _, rec := range records {
		g, ok := groups[rec.Scenario]
		if !ok {
			g = &acc{}
			groups[rec.Scenario] = g
			keys = append(keys, rec.Scenario)
		}
		g.count++
		g.price += rec.Price
		g.dollar += rec.DollarGain
	}
	scenario.Sort(keys)

	shares := make([]ScenarioShare, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		n := float64(g.count)
		shares = append(shares, ScenarioShare{
			Scenario:       k,
			Count:          g.count,
			Frequency:      n / float64(len(records)),
			MeanPrice:      financials.RoundCents(g.price / n),
			MeanDollarGain: financials.RoundCents(g.dollar / n),
		})
	}
	return shares
}
