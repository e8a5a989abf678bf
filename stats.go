package remap

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about the
// transform passes run so far by a Mapper
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the first transform pass
	GetStartTime() time.Time
	// GetRuntime returns the total time spent inside transform passes
	GetRuntime() time.Duration
	// GetNumRowsProcessed returns the number of rows processed, counted by pass
	GetNumRowsProcessed() []int64
	// GetPassRuntimes returns all recorded pass runtimes, in pass order
	GetPassRuntimes() []time.Duration
	// GetPassIDs returns the unique IDs of all recorded passes, in pass order
	GetPassIDs() []string
}
