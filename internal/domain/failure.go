package domain

// CaseFailure represents the diagnostic for one failed case
type CaseFailure struct {
	Name     string   `json:"name"`
	Message  string   `json:"message"`
	Stack    []string `json:"stack,omitempty"`
	Resolved bool     `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}

// NewCaseFailure builds the diagnostic for a failed result
func NewCaseFailure(res CaseResult) CaseFailure {
	msg := "case failed"
	if res.Error != nil {
		msg = res.Error.Error()
	}
	return CaseFailure{
		Name:    res.Name,
		Message: msg,
		Stack:   res.Stack,
	}
}
