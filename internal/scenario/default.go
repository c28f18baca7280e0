package scenario

// Default returns the built-in CHGG position.
// The bankruptcy weight is derived from the company bond yield (22.51%) over the
// 15-month treasury (4.12%).
func Default() *File {
	weight := func(w float64) *float64 { return &w }

	return &File{
		Meta: Meta{
			Ticker:      "CHGG",
			AsOf:        "2024-11-15",
			Description: "Chegg, Inc. common stock",
		},
		Position: PositionSpec{
			EntryPrice: 1.30,
			ShareCount: 3050,
		},
		Simulation: SimulationSpec{
			Trials: 100000,
		},
		Scenarios: map[string]ScenarioSpec{
			string(Bankruptcy): {
				Valuation: ValuationRange{Low: 0, Mode: 0.05, High: 0.10},
				Notes:     "equity wiped out in restructuring",
			},
			string(Buyout): {
				Weight:    weight(0.32),
				Valuation: ValuationRange{Low: 2.20, Mode: 3.20, High: 3.50},
				Notes:     "take-private at a premium to book",
			},
			string(Turnaround): {
				Weight:    weight(0.15),
				Valuation: ValuationRange{Low: 1.60, Mode: 2.40, High: 3.00},
				Notes:     "subscriber losses stop, AI products monetise",
			},
			string(Stagnation): {
				Weight:    weight(0.30),
				Valuation: ValuationRange{Low: 0.80, Mode: 1.20, High: 1.70},
				Notes:     "slow decline funded by cost cuts",
			},
		},
		DefaultModel: &DefaultModel{
			Scenario:        string(Bankruptcy),
			CompanyYield:    0.2251,
			TreasuryYield:   0.0412,
			TimeFrameMonths: 15,
		},
	}
}
