package execution

import (
	"time"

	"runnable"
	"runnable/internal/domain"
)

// Executor executes cases and returns results
type Executor interface {
	Execute(cases []runnable.Case) ([]domain.CaseResult, time.Duration, error)
}
