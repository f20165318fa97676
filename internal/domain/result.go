package domain

import "time"

// CaseResult represents the outcome of invoking a single registered case
type CaseResult struct {
	Name       string        // Registered case name
	Success    bool          // Whether the case passed (skips count as passed)
	Skipped    bool          // Whether the case was skipped instead of invoked
	SkipReason string        // Why the case was skipped
	Error      error         // Failure reported by the case, if any
	Stack      []string      // Panic stack, when the failure was a panic
	Duration   time.Duration // Time taken to execute
}

// RunMeta contains metadata about one harness run
type RunMeta struct {
	RunID           string  `json:"run_id"`
	TotalCases      int     `json:"total_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	SkippedCases    int     `json:"skipped_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for one run
type RunOutput struct {
	Meta     RunMeta       `json:"meta"`
	Failures []CaseFailure `json:"failures"`
}
