package jobs

import (
	"context"
	"math/rand/v2"

	"github.com/wonny/montecarlo/internal/service"
	"github.com/wonny/montecarlo/pkg/logger"
)

// RefreshJob re-runs the configured simulation with a fresh seed and publishes the report
type RefreshJob struct {
	service  *service.Service
	store    *service.LatestStore
	schedule string
	trials   int
	logger   *logger.Logger
}

// NewRefreshJob creates a new refresh job. trials 0 keeps the scenario file's trial count.
func NewRefreshJob(
	svc *service.Service,
	store *service.LatestStore,
	schedule string,
	trials int,
	log *logger.Logger,
) *RefreshJob {
	return &RefreshJob{
		service:  svc,
		store:    store,
		schedule: schedule,
		trials:   trials,
		logger:   log,
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return "simulation_refresh"
}

// Schedule returns the cron schedule
func (j *RefreshJob) Schedule() string {
	return j.schedule
}

// Run executes one simulation and stores its report
func (j *RefreshJob) Run(ctx context.Context) error {
	seed := rand.Uint64()
	for seed == 0 {
		seed = rand.Uint64()
	}

	rep, _, err := j.service.Run(ctx, service.Request{Trials: j.trials, Seed: seed})
	if err != nil {
		return err
	}

	j.store.Set(rep)

	j.logger.WithFields(map[string]interface{}{
		"run_id":      rep.RunID.String(),
		"seed":        rep.Seed,
		"trials":      rep.Summary.Trials,
		"mean_pct":    rep.Summary.PercentGain.Mean,
		"loss_chance": rep.Summary.ProbabilityOfLoss,
	}).Info("Simulation refreshed")

	return nil
}
