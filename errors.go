package runnable

import "errors"

// Registration and lookup errors. Callers match them with errors.Is.
var (
	// ErrNameEmpty is returned when registering a case without a name.
	ErrNameEmpty = errors.New("case name is empty")

	// ErrNameInvalid is returned when a case name contains whitespace,
	// which would make the console markers ambiguous.
	ErrNameInvalid = errors.New("case name contains whitespace")

	// ErrRunNil is returned when registering a case with nil logic.
	ErrRunNil = errors.New("case logic is nil")

	// ErrDuplicateName is returned when registering a case under a name
	// that is already taken. The first registration wins.
	ErrDuplicateName = errors.New("case already registered")

	// ErrNotFound is returned when invoking a name with no registered case.
	ErrNotFound = errors.New("case not found")
)
