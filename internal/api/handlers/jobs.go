package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wonny/montecarlo/internal/scheduler"
)

// JobSource exposes scheduler run statistics
type JobSource interface {
	GetAllJobs() []string
	GetJobStats() map[string]scheduler.JobStats
	GetJobHistory(jobName string) (*scheduler.JobHistory, error)
}

// JobsHandler serves background job status
type JobsHandler struct {
	jobs JobSource
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(jobs JobSource) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

const defaultHistoryLimit = 20

// List returns run statistics for every registered job
// GET /api/jobs
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	stats := h.jobs.GetJobStats()

	out := make([]scheduler.JobStats, 0, len(stats))
	for _, name := range h.jobs.GetAllJobs() {
		if s, ok := stats[name]; ok {
			out = append(out, s)
		}
	}

	respondJSON(w, http.StatusOK, out)
}

// History returns the latest runs of one job, newest last
// GET /api/jobs/{name}/history?limit=
func (h *JobsHandler) History(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	history, err := h.jobs.GetJobHistory(name)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, history.GetLatestResults(limit))
}
