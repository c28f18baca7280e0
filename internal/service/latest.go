package service

import (
	"sync"

	"github.com/wonny/montecarlo/internal/report"
)

// LatestStore keeps the most recent report in memory
type LatestStore struct {
	mu     sync.RWMutex
	latest *report.Report
}

// NewLatestStore creates an empty store
func NewLatestStore() *LatestStore {
	return &LatestStore{}
}

// Set replaces the stored report
func (s *LatestStore) Set(r *report.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = r
}

// Get returns the stored report, or false if none has been produced yet
func (s *LatestStore) Get() (*report.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.latest != nil
}
