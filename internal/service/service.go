package service

import (
	"context"
	"fmt"

	"github.com/wonny/montecarlo/internal/report"
	"github.com/wonny/montecarlo/internal/scenario"
	"github.com/wonny/montecarlo/internal/simulation"
	"github.com/wonny/montecarlo/pkg/logger"
)

// Request holds per-run overrides (zero values keep the scenario file's settings)
type Request struct {
	Trials         int    `json:"trials"`
	Seed           uint64 `json:"seed"`
	Bins           int    `json:"bins"`
	IncludeRecords bool   `json:"include_records"`
}

// Service runs simulations of one scenario file
// ⭐ SSOT: file -> weights/valuations -> simulation -> report happens only here
type Service struct {
	file   *scenario.File
	hash   string
	logger *logger.Logger
}

// New validates f and creates a service for it
func New(f *scenario.File, log *logger.Logger) (*Service, error) {
	if err := scenario.Validate(f); err != nil {
		return nil, err
	}

	hash, err := scenario.Hash(f)
	if err != nil {
		return nil, fmt.Errorf("hash scenario file: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	for _, w := range scenario.Warn(f) {
		log.WithField("code", w.Code).Warn(w.Message)
	}

	return &Service{file: f.Clone(), hash: hash, logger: log}, nil
}

// File returns a copy of the scenario file
func (s *Service) File() *scenario.File {
	return s.file.Clone()
}

// Hash returns the scenario file hash
func (s *Service) Hash() string {
	return s.hash
}

// Run simulates the configured position and builds its report
func (s *Service) Run(ctx context.Context, req Request) (*report.Report, *simulation.Result, error) {
	if req.Bins < 0 || req.Bins > report.MaxBins {
		return nil, nil, fmt.Errorf("%w: bins must be in [0, %d], got %d",
			simulation.ErrInvalidArgument, report.MaxBins, req.Bins)
	}

	trials := req.Trials
	if trials == 0 {
		trials = s.file.Simulation.Trials
	}
	seed := req.Seed
	if seed == 0 {
		seed = s.file.Simulation.Seed
	}

	weights, err := s.file.Probabilities()
	if err != nil {
		return nil, nil, err
	}
	valuations, err := s.file.Valuations()
	if err != nil {
		return nil, nil, err
	}

	position := simulation.Position{
		EntryPrice: s.file.Position.EntryPrice,
		ShareCount: s.file.Position.ShareCount,
	}

	sim := simulation.NewSimulator(simulation.Config{Seed: seed, ConfigHash: s.hash}, s.logger)
	result, err := sim.Simulate(ctx, position, trials, weights, valuations)
	if err != nil {
		return nil, nil, err
	}

	rep, err := report.Build(s.file.Meta.Ticker, result, req.Bins, req.IncludeRecords)
	if err != nil {
		return nil, nil, fmt.Errorf("build report: %w", err)
	}

	return rep, result, nil
}
