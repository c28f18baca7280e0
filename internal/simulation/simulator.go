package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/montecarlo/internal/financials"
	"github.com/wonny/montecarlo/internal/scenario"
	"github.com/wonny/montecarlo/pkg/logger"
)

// ctxCheckInterval is how many trials run between context checks
const ctxCheckInterval = 4096

// Config configures a Simulator
type Config struct {
	Seed       uint64 // 0 = time-based
	ConfigHash string // recorded on the result
}

// Simulator runs trials sequentially and turns them into records
type Simulator struct {
	runner     *TrialRunner
	seed       uint64
	configHash string
	log        *logger.Logger
}

// NewSimulator creates a simulator with its own sampler
func NewSimulator(cfg Config, log *logger.Logger) *Simulator {
	sampler := NewSampler(cfg.Seed)
	s := NewSimulatorWithRunner(NewTrialRunner(sampler), log)
	s.seed = sampler.Seed()
	s.configHash = cfg.ConfigHash
	return s
}

// NewSimulatorWithRunner creates a simulator around an existing runner
func NewSimulatorWithRunner(runner *TrialRunner, log *logger.Logger) *Simulator {
	if log == nil {
		log = logger.Nop()
	}
	return &Simulator{runner: runner, log: log}
}

// Seed returns the effective seed (0 when built around a custom runner)
func (s *Simulator) Seed() uint64 {
	return s.seed
}

// Simulate runs trialCount trials against position.
// Arguments and configuration are validated before any sampling; no partial result is returned on failure.
func (s *Simulator) Simulate(
	ctx context.Context,
	position Position,
	trialCount int,
	weights scenario.Probabilities,
	valuations scenario.Valuations,
) (*Result, error) {
	// 입력 검증
	if trialCount <= 0 {
		return nil, fmt.Errorf("%w: trial count must be > 0, got %d", ErrInvalidArgument, trialCount)
	}
	if err := position.Validate(); err != nil {
		return nil, err
	}
	if err := scenario.CheckConsistency(weights, valuations); err != nil {
		return nil, err
	}

	started := time.Now()
	runID := uuid.New()
	log := s.log.WithFields(map[string]interface{}{
		"run_id": runID.String(),
		"trials": trialCount,
		"seed":   s.seed,
	})
	log.Info("Simulation started")

	records := make([]TrialRecord, 0, trialCount)
	for i := 0; i < trialCount; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				log.WithError(err).Warn("Simulation cancelled")
				return nil, fmt.Errorf("simulation cancelled after %d trials: %w", i, err)
			}
		}

		trial, err := s.runner.Run(weights, valuations)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}

		records = append(records, TrialRecord{
			Scenario:    trial.Scenario,
			Price:       trial.Price,
			PercentGain: financials.PercentROI(position.EntryPrice, trial.Price),
			DollarGain:  financials.DollarProfit(position.ShareCount, position.EntryPrice, trial.Price),
		})
	}

	result := &Result{
		RunID:      runID,
		RunDate:    started,
		Duration:   time.Since(started),
		Seed:       s.seed,
		ConfigHash: s.configHash,
		Position:   position,
		TrialCount: trialCount,
		Records:    records,
	}

	counts := result.Counts()
	for _, sc := range weights.Scenarios() {
		log.WithField("scenario", sc.String()).Debugf("%d trials", counts[sc])
	}
	log.WithField("duration", result.Duration.String()).Info("Simulation completed")

	return result, nil
}
