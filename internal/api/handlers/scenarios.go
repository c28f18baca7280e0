package handlers

import (
	"net/http"

	"github.com/wonny/montecarlo/internal/scenario"
	"github.com/wonny/montecarlo/internal/service"
)

// ScenarioHandler serves the active scenario file
type ScenarioHandler struct {
	service *service.Service
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(svc *service.Service) *ScenarioHandler {
	return &ScenarioHandler{service: svc}
}

type scenariosResponse struct {
	Hash     string                 `json:"hash"`
	File     *scenario.File         `json:"file"`
	Weights  scenario.Probabilities `json:"weights"`
	Warnings []scenario.Warning     `json:"warnings"`
}

// Get returns the scenario file with its effective weights
// GET /api/scenarios
func (h *ScenarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	f := h.service.File()

	weights, err := f.Probabilities()
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	warnings := scenario.Warn(f)
	if warnings == nil {
		warnings = []scenario.Warning{}
	}

	respondJSON(w, http.StatusOK, scenariosResponse{
		Hash:     h.service.Hash(),
		File:     f,
		Weights:  weights,
		Warnings: warnings,
	})
}
