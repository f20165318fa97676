package execution

import "runnable"

// Scheduler distributes cases across workers
type Scheduler interface {
	Schedule(cases []runnable.Case, workerCount int) [][]runnable.Case
}

// RoundRobinScheduler distributes cases evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule distributes cases evenly across workers using round-robin
func (s *RoundRobinScheduler) Schedule(cases []runnable.Case, workerCount int) [][]runnable.Case {
	if workerCount <= 0 {
		workerCount = 1
	}

	distribution := make([][]runnable.Case, workerCount)
	for i := range distribution {
		distribution[i] = make([]runnable.Case, 0)
	}

	for i, c := range cases {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], c)
	}

	return distribution
}
