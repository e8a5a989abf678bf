// Package stats records runtime statistics for transform passes.
package stats

import (
	"sync"
	"time"
)

// RunStatistics accumulates statistics across the transform passes run by
// a single Mapper. It implements remap.RuntimeStatistics.
type RunStatistics struct {
	lock         sync.Mutex
	startTime    time.Time
	passIDs      []string
	passRuntimes []time.Duration
	rowCounts    []int64
}

// CreateRunStatistics returns an empty RunStatistics
func CreateRunStatistics() *RunStatistics {
	return &RunStatistics{}
}

// RecordPass records the outcome of one completed transform pass
func (s *RunStatistics) RecordPass(id string, start time.Time, runtime time.Duration, rows int64) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.startTime.IsZero() {
		s.startTime = start
	}
	s.passIDs = append(s.passIDs, id)
	s.passRuntimes = append(s.passRuntimes, runtime)
	s.rowCounts = append(s.rowCounts, rows)
}

// GetStartTime returns the start time of the first transform pass
func (s *RunStatistics) GetStartTime() time.Time {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.startTime
}

// GetRuntime returns the total time spent inside transform passes
func (s *RunStatistics) GetRuntime() time.Duration {
	s.lock.Lock()
	defer s.lock.Unlock()
	var total time.Duration
	for _, runtime := range s.passRuntimes {
		total += runtime
	}
	return total
}

// GetNumRowsProcessed returns the number of rows processed, counted by pass
func (s *RunStatistics) GetNumRowsProcessed() []int64 {
	s.lock.Lock()
	defer s.lock.Unlock()
	counts := make([]int64, len(s.rowCounts))
	copy(counts, s.rowCounts)
	return counts
}

// GetPassRuntimes returns all recorded pass runtimes, in pass order
func (s *RunStatistics) GetPassRuntimes() []time.Duration {
	s.lock.Lock()
	defer s.lock.Unlock()
	runtimes := make([]time.Duration, len(s.passRuntimes))
	copy(runtimes, s.passRuntimes)
	return runtimes
}

// GetPassIDs returns the unique IDs of all recorded passes, in pass order
func (s *RunStatistics) GetPassIDs() []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	ids := make([]string, len(s.passIDs))
	copy(ids, s.passIDs)
	return ids
}
