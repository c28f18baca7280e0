package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/wonny/montecarlo/internal/service"
	"github.com/wonny/montecarlo/pkg/logger"
)

// SimulationHandler handles simulation API endpoints
// ⭐ SSOT: Simulation API 핸들러는 이 구조체에서만
type SimulationHandler struct {
	service   *service.Service
	latest    *service.LatestStore
	maxTrials int
	maxBins   int
	logger    *logger.Logger
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(
	svc *service.Service,
	latest *service.LatestStore,
	maxTrials int,
	maxBins int,
	log *logger.Logger,
) *SimulationHandler {
	return &SimulationHandler{
		service:   svc,
		latest:    latest,
		maxTrials: maxTrials,
		maxBins:   maxBins,
		logger:    log,
	}
}

// Run runs a simulation and returns its report
// POST /api/simulations
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req service.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Trials < 0 {
		respondError(w, http.StatusBadRequest, "trials must be >= 0")
		return
	}
	if req.Trials == 0 {
		req.Trials = h.service.File().Simulation.Trials
	}
	if req.Trials > h.maxTrials {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("trials must be <= %d", h.maxTrials))
		return
	}
	if req.Bins < 0 || req.Bins > h.maxBins {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("bins must be in [0, %d]", h.maxBins))
		return
	}

	rep, _, err := h.service.Run(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.WithError(err).Error("Simulation failed")
		}
		respondError(w, status, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, rep)
}

// Latest returns the report produced by the last refresh
// GET /api/simulations/latest
func (h *SimulationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.latest.Get()
	if !ok {
		respondError(w, http.StatusNotFound, "no simulation has completed yet")
		return
	}

	respondJSON(w, http.StatusOK, rep)
}
