package scenario

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// ValidationError is a scenario-file constraint violation (run must not start)
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets callers match every validation failure with errors.Is(err, ErrInvalidConfiguration)
func (e ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// Warning is a recommendation violation (reported, run continues)
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Warning codes
const (
	WarnWeightsNotNormalised = "WEIGHTS_NOT_NORMALISED"
	WarnDegenerateRange      = "DEGENERATE_RANGE"
	WarnSubCentValuation     = "SUB_CENT_VALUATION"
	WarnUnalignedValuation   = "UNALIGNED_VALUATION"
)

const weightSumTolerance = 1e-6

// Validate checks all required constraints of a scenario file
func Validate(f *File) error {
	// === Meta ===
	if f.Meta.Ticker == "" {
		return ValidationError{"meta.ticker", "required"}
	}
	if f.Meta.AsOf != "" {
		if _, err := time.Parse("2006-01-02", f.Meta.AsOf); err != nil {
			return ValidationError{"meta.as_of", "must be YYYY-MM-DD"}
		}
	}

	// === Position ===
	if !(f.Position.EntryPrice > 0) || math.IsInf(f.Position.EntryPrice, 0) {
		return ValidationError{"position.entry_price", "must be a finite number > 0"}
	}
	if f.Position.ShareCount <= 0 {
		return ValidationError{"position.share_count", "must be > 0"}
	}

	// === Simulation ===
	if f.Simulation.Trials < 0 {
		return ValidationError{"simulation.trials", "must be >= 0"}
	}

	// === Scenarios ===
	if len(f.Scenarios) == 0 {
		return ValidationError{"scenarios", "at least one scenario is required"}
	}

	for _, name := range f.scenarioNames() {
		spec := f.Scenarios[name]
		field := "scenarios." + name

		if _, err := Parse(name); err != nil {
			return ValidationError{field, "unknown scenario"}
		}
		if err := spec.Valuation.Validate(); err != nil {
			return ValidationError{field + ".valuation", err.Error()}
		}

		derived := f.DefaultModel != nil && f.DefaultModel.Scenario == name
		switch {
		case spec.Weight != nil && derived:
			return ValidationError{field + ".weight", "must be omitted when default_model derives it"}
		case spec.Weight == nil && !derived:
			return ValidationError{field + ".weight", "required"}
		case spec.Weight != nil:
			w := *spec.Weight
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return ValidationError{field + ".weight", "must be a finite number >= 0"}
			}
		}
	}

	// === Default model ===
	if dm := f.DefaultModel; dm != nil {
		if _, ok := f.Scenarios[dm.Scenario]; !ok {
			return ValidationError{"default_model.scenario", fmt.Sprintf("%q is not a configured scenario", dm.Scenario)}
		}
		if dm.TimeFrameMonths <= 0 {
			return ValidationError{"default_model.time_frame_months", "must be > 0"}
		}
		if dm.DerivedWeight() < 0 {
			return ValidationError{"default_model", "company_yield below treasury_yield gives a negative weight"}
		}
	}

	weights, err := f.Probabilities()
	if err != nil {
		return ValidationError{"scenarios", err.Error()}
	}
	if weights.Total() <= 0 {
		return ValidationError{"scenarios", "all scenario weights are zero"}
	}

	return nil
}

// Warn reports recommendation violations of an already validated file
func Warn(f *File) []Warning {
	var warnings []Warning

	if weights, err := f.Probabilities(); err == nil {
		if total := weights.Total(); math.Abs(total-1) > weightSumTolerance {
			warnings = append(warnings, Warning{
				Code:    WarnWeightsNotNormalised,
				Message: fmt.Sprintf("scenario weights sum to %.4f; draws use them as relative weights", total),
			})
		}
	}

	for _, name := range f.scenarioNames() {
		r := f.Scenarios[name].Valuation
		switch {
		case r.Degenerate():
			warnings = append(warnings, Warning{
				Code:    WarnDegenerateRange,
				Message: fmt.Sprintf("%s: low == high, every trial exits at %.2f", name, r.Low),
			})
		case r.High-r.Low < 0.01:
			warnings = append(warnings, Warning{
				Code:    WarnSubCentValuation,
				Message: fmt.Sprintf("%s: range narrower than one cent collapses after rounding", name),
			})
		}
		if !wholeCents(r.Low) || !wholeCents(r.High) {
			warnings = append(warnings, Warning{
				Code:    WarnUnalignedValuation,
				Message: fmt.Sprintf("%s: bounds %v..%v are not whole cents; draws near them keep full precision", name, r.Low, r.High),
			})
		}
	}

	return warnings
}

func wholeCents(v float64) bool {
	cents := v * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}

// scenarioNames returns the configured names in canonical order
func (f *File) scenarioNames() []string {
	names := make([]string, 0, len(f.Scenarios))
	for name := range f.Scenarios {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := Scenario(names[i]).rank(), Scenario(names[j]).rank()
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	return names
}
