package handlers

import (
	"net/http"
	"strconv"

	"github.com/wonny/montecarlo/internal/financials"
)

// FinancialsHandler exposes the default-probability estimator
type FinancialsHandler struct{}

// NewFinancialsHandler creates a new financials handler
func NewFinancialsHandler() *FinancialsHandler {
	return &FinancialsHandler{}
}

// DefaultProbability estimates default probability from bond yields
// GET /api/default-probability?company_yield=0.2251&treasury_yield=0.0412&months=15
func (h *FinancialsHandler) DefaultProbability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	companyYield, err := strconv.ParseFloat(q.Get("company_yield"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "company_yield must be a number")
		return
	}

	treasuryYield, err := strconv.ParseFloat(q.Get("treasury_yield"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "treasury_yield must be a number")
		return
	}

	months := 12
	if v := q.Get("months"); v != "" {
		months, err = strconv.Atoi(v)
		if err != nil || months <= 0 {
			respondError(w, http.StatusBadRequest, "months must be a positive integer")
			return
		}
	}

	respondJSON(w, http.StatusOK, financials.EstimateDefault(companyYield, treasuryYield, months))
}
