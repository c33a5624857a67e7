package domain

import "strconv"

// ExitError carries the exit status of a failed external command. The
// wrapper and runner surface the underlying tool's exit code verbatim, so
// the code must survive wrapping on its way up to main.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the underlying error message.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit status " + strconv.Itoa(e.Code)
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
