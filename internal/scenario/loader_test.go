package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadChegg(t *testing.T) {
	path := "../../configs/chegg.yaml"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("config file not found")
	}

	f, data, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "CHGG", f.Meta.Ticker)

	weights, err := f.Probabilities()
	require.NoError(t, err)
	assert.Equal(t, 0.23, weights[Bankruptcy])
	assert.Empty(t, Warn(f))

	// file and built-in default describe the same position
	fileHash, err := Hash(f)
	require.NoError(t, err)
	defaultHash, err := Hash(Default())
	require.NoError(t, err)
	assert.Equal(t, defaultHash, fileHash)
}

func TestDefault(t *testing.T) {
	f := Default()
	require.NoError(t, Validate(f))

	weights, err := f.Probabilities()
	require.NoError(t, err)
	assert.Equal(t, Probabilities{Bankruptcy: 0.23, Buyout: 0.32, Turnaround: 0.15, Stagnation: 0.30}, weights)

	valuations, err := f.Valuations()
	require.NoError(t, err)
	require.NoError(t, CheckConsistency(weights, valuations))
}

func TestHashDeterministic(t *testing.T) {
	h1, err := Hash(Default())
	require.NoError(t, err)
	assert.Len(t, h1, 64)

	h2, _ := Hash(Default())
	assert.Equal(t, h1, h2)

	changed := Default()
	changed.Position.ShareCount = 100
	h3, _ := Hash(changed)
	assert.NotEqual(t, h1, h3)
}

func TestMarshalParseFileRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	f, err := ParseFile(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
}

func TestParseFileRejectsUnknownFields(t *testing.T) {
	_, err := ParseFile([]byte(`
meta:
  ticker: CHGG
position:
  entry_price: 1.30
  share_count: 3050
  leverage: 2
scenarios:
  buyout:
    weight: 1
    valuation: { low: 1, mode: 2, high: 3 }
`))
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "leverage")
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *File)
		field  string
	}{
		{"missing ticker", func(f *File) { f.Meta.Ticker = "" }, "meta.ticker"},
		{"bad as_of", func(f *File) { f.Meta.AsOf = "15/11/2024" }, "meta.as_of"},
		{"zero entry price", func(f *File) { f.Position.EntryPrice = 0 }, "position.entry_price"},
		{"zero shares", func(f *File) { f.Position.ShareCount = 0 }, "position.share_count"},
		{"negative trials", func(f *File) { f.Simulation.Trials = -1 }, "simulation.trials"},
		{"no scenarios", func(f *File) { f.Scenarios = nil }, "scenarios"},
		{"unknown scenario", func(f *File) {
			f.Scenarios["moonshot"] = f.Scenarios[string(Buyout)]
		}, "scenarios.moonshot"},
		{"inverted range", func(f *File) {
			s := f.Scenarios[string(Buyout)]
			s.Valuation = ValuationRange{Low: 3, Mode: 2, High: 1}
			f.Scenarios[string(Buyout)] = s
		}, "scenarios.buyout.valuation"},
		{"missing weight", func(f *File) { f.DefaultModel = nil }, "scenarios.bankruptcy.weight"},
		{"weight and default model", func(f *File) {
			s := f.Scenarios[string(Bankruptcy)]
			w := 0.2
			s.Weight = &w
			f.Scenarios[string(Bankruptcy)] = s
		}, "scenarios.bankruptcy.weight"},
		{"default model unknown scenario", func(f *File) {
			f.DefaultModel.Scenario = "delisting"
		}, "scenarios.bankruptcy.weight"},
		{"default model months", func(f *File) { f.DefaultModel.TimeFrameMonths = 0 }, "default_model.time_frame_months"},
		{"negative spread", func(f *File) { f.DefaultModel.CompanyYield = 0.01 }, "default_model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Default().Clone()
			tt.mutate(f)

			err := Validate(f)
			require.ErrorIs(t, err, ErrInvalidConfiguration)

			var ve ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateAllZeroWeights(t *testing.T) {
	f := Default()
	f.DefaultModel.CompanyYield = f.DefaultModel.TreasuryYield
	for name, spec := range f.Scenarios {
		if spec.Weight != nil {
			zero := 0.0
			spec.Weight = &zero
			f.Scenarios[name] = spec
		}
	}

	err := Validate(f)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestWarn(t *testing.T) {
	assert.Empty(t, Warn(Default()))

	f := Default()
	buyout := f.Scenarios[string(Buyout)]
	w := 0.50
	buyout.Weight = &w
	f.Scenarios[string(Buyout)] = buyout

	stagnation := f.Scenarios[string(Stagnation)]
	stagnation.Valuation = ValuationRange{Low: 1.20, Mode: 1.20, High: 1.20}
	f.Scenarios[string(Stagnation)] = stagnation

	turnaround := f.Scenarios[string(Turnaround)]
	turnaround.Valuation = ValuationRange{Low: 2.400, Mode: 2.402, High: 2.404}
	f.Scenarios[string(Turnaround)] = turnaround

	require.NoError(t, Validate(f))

	var codes []string
	for _, w := range Warn(f) {
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []string{WarnWeightsNotNormalised, WarnSubCentValuation, WarnUnalignedValuation, WarnDegenerateRange}, codes)
}

func TestWarnUnalignedValuation(t *testing.T) {
	f := Default()
	buyout := f.Scenarios[string(Buyout)]
	buyout.Valuation = ValuationRange{Low: 1.234, Mode: 1.5, High: 1.996}
	f.Scenarios[string(Buyout)] = buyout

	warnings := Warn(f)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnUnalignedValuation, warnings[0].Code)
	assert.Contains(t, warnings[0].Message, "buyout")
}

func TestClone(t *testing.T) {
	orig := Default()
	c := orig.Clone()

	*c.Scenarios[string(Buyout)].Weight = 0.99
	c.DefaultModel.CompanyYield = 0.5

	assert.Equal(t, 0.32, *orig.Scenarios[string(Buyout)].Weight)
	assert.Equal(t, 0.2251, orig.DefaultModel.CompanyYield)
}
