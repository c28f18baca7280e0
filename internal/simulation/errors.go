package simulation

import (
	"errors"

	"github.com/wonny/montecarlo/internal/scenario"
)

var (
	// ErrInvalidArgument marks a bad trial count or position
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidConfiguration is scenario.ErrInvalidConfiguration
	ErrInvalidConfiguration = scenario.ErrInvalidConfiguration
	// ErrMissingValuation is scenario.ErrMissingValuation
	ErrMissingValuation = scenario.ErrMissingValuation
)
