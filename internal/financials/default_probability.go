package financials

// Recovery-rate buckets keyed by the company's bond yield (upper bounds inclusive).
// Higher yields signal deeper distress and lower expected recovery.
var recoveryBuckets = []struct {
	maxYield     float64
	recoveryRate float64
}{
	{0.06, 0.55},
	{0.10, 0.40},
	{0.15, 0.30},
	{0.20, 0.25},
}

// distressedRecoveryRate applies above the last bucket
const distressedRecoveryRate = 0.20

// RecoveryRate returns the expected recovery rate for a company yield (decimal, e.g. 0.2251)
func RecoveryRate(companyYield float64) float64 {
	for _, b := range recoveryBuckets {
		if companyYield <= b.maxYield {
			return b.recoveryRate
		}
	}
	return distressedRecoveryRate
}

// DefaultProbability converts a yield spread over treasuries into a bankruptcy probability:
// (companyYield - treasuryYield) / (1 - recoveryRate).
// timeFrameMonths labels the bond horizon and does not enter the formula.
// Negative spreads are not rejected and give a negative result; callers clamp or round.
func DefaultProbability(companyYield, treasuryYield float64, timeFrameMonths int) float64 {
	return EstimateDefault(companyYield, treasuryYield, timeFrameMonths).Probability
}

// DefaultEstimate carries the intermediate values of a default-probability estimate
type DefaultEstimate struct {
	CompanyYield    float64 `json:"company_yield"`
	TreasuryYield   float64 `json:"treasury_yield"`
	TimeFrameMonths int     `json:"time_frame_months"`
	Spread          float64 `json:"spread"`
	RecoveryRate    float64 `json:"recovery_rate"`
	Probability     float64 `json:"probability"`
}

// EstimateDefault is DefaultProbability with its inputs and intermediates kept for display
func EstimateDefault(companyYield, treasuryYield float64, timeFrameMonths int) DefaultEstimate {
	spread := companyYield - treasuryYield
	recovery := RecoveryRate(companyYield)

	return DefaultEstimate{
		CompanyYield:    companyYield,
		TreasuryYield:   treasuryYield,
		TimeFrameMonths: timeFrameMonths,
		Spread:          spread,
		RecoveryRate:    recovery,
		Probability:     spread / (1 - recovery),
	}
}
